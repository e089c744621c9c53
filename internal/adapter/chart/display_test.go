package chart

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerDisplay_Show(t *testing.T) {
	t.Run("opens chart and waits for enter", func(t *testing.T) {
		var opened string
		var prompt bytes.Buffer
		in := bufio.NewReader(strings.NewReader("\nmy own review\n"))
		d := NewViewerDisplay(in, &prompt)
		d.open = func(path string) error {
			opened = path
			return nil
		}

		require.NoError(t, d.Show("chart.png"))

		assert.Equal(t, "chart.png", opened)
		assert.Contains(t, prompt.String(), "press Enter")

		// the next line stays available for later input
		rest, err := in.ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "my own review\n", rest)
	})

	t.Run("viewer failure", func(t *testing.T) {
		d := NewViewerDisplay(bufio.NewReader(strings.NewReader("\n")), &bytes.Buffer{})
		d.open = func(string) error { return errors.New("no display") }

		err := d.Show("chart.png")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no display")
	})

	t.Run("end of input", func(t *testing.T) {
		d := NewViewerDisplay(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
		d.open = func(string) error { return nil }

		assert.Error(t, d.Show("chart.png"))
	})
}
