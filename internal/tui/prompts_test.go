package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	pusherrors "pushit.dev/pushit/internal/errors"
)

func TestLinePrompter(t *testing.T) {
	t.Run("returns answers line by line", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("fix bug\r\n\nfeature/x\n"), &out)
		ctx := context.Background()

		answer, err := p.Ask(ctx, "message")
		require.NoError(t, err)
		require.Equal(t, "fix bug", answer)

		answer, err = p.Ask(ctx, "message")
		require.NoError(t, err)
		require.Equal(t, "", answer)

		answer, err = p.Ask(ctx, "branch")
		require.NoError(t, err)
		require.Equal(t, "feature/x", answer)

		require.Equal(t, "message: message: branch: ", out.String())
	})

	t.Run("keeps surrounding whitespace", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("  padded  \n"), io.Discard)

		answer, err := p.Ask(context.Background(), "message")
		require.NoError(t, err)
		require.Equal(t, "  padded  ", answer)
	})

	t.Run("last line without newline is returned", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("no newline"), io.Discard)

		answer, err := p.Ask(context.Background(), "message")
		require.NoError(t, err)
		require.Equal(t, "no newline", answer)
	})

	t.Run("long lines are returned whole", func(t *testing.T) {
		message := strings.Repeat("a", 128*1024)
		p := NewLinePrompter(strings.NewReader(message+"\r\nmain\n"), io.Discard)
		ctx := context.Background()

		answer, err := p.Ask(ctx, "message")
		require.NoError(t, err)
		require.Equal(t, message, answer)

		answer, err = p.Ask(ctx, "branch")
		require.NoError(t, err)
		require.Equal(t, "main", answer)
	})

	t.Run("closed input is an interruption", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("only one\n"), io.Discard)
		ctx := context.Background()

		_, err := p.Ask(ctx, "message")
		require.NoError(t, err)

		_, err = p.Ask(ctx, "branch")
		require.ErrorIs(t, err, pusherrors.ErrUserInterrupted)

		// Asking again after the reader finished keeps reporting the same
		_, err = p.Ask(ctx, "branch")
		require.ErrorIs(t, err, pusherrors.ErrUserInterrupted)
	})

	t.Run("canceled context is an interruption", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()

		p := NewLinePrompter(reader, io.Discard)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Ask(ctx, "message")
		require.ErrorIs(t, err, pusherrors.ErrUserInterrupted)
		require.ErrorIs(t, err, context.Canceled)
	})
}
