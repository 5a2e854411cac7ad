package gcs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type recordingWriter struct {
	ctx       context.Context
	buf       bytes.Buffer
	committed bool
	closeErr  error
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close commits only when the writer's context is still live, as the
// storage writer does.
func (w *recordingWriter) Close() error {
	if w.ctx.Err() != nil {
		return w.ctx.Err()
	}
	w.committed = true
	return w.closeErr
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("source truncated")
}

func TestWriteObject_Commits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &recordingWriter{ctx: ctx}

	err := writeObject(w, cancel, strings.NewReader("%PDF-1.7"))

	require.NoError(t, err)
	assert.True(t, w.committed)
	assert.Equal(t, "%PDF-1.7", w.buf.String())
}

func TestWriteObject_FailedCopyIsNotCommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &recordingWriter{ctx: ctx}

	err := writeObject(w, cancel, io.MultiReader(strings.NewReader("%PDF"), failingReader{}))

	assert.ErrorContains(t, err, "source truncated")
	assert.False(t, w.committed)
}

func TestWriteObject_CloseErrorIsReturned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &recordingWriter{ctx: ctx, closeErr: &googleapi.Error{Code: http.StatusPreconditionFailed}}

	err := writeObject(w, cancel, strings.NewReader("x"))

	assert.True(t, isPreconditionFailed(err))
}
