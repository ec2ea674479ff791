package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunny1911/image-email-scraper/internal/common"
)

type fakeFetcher struct {
	data []byte
	err  error
	got  string
}

func (f *fakeFetcher) Fetch(_ context.Context, src string) ([]byte, error) {
	f.got = src
	return f.data, f.err
}

type fakeExtractor struct {
	emails []string
	err    error
	got    []byte
}

func (f *fakeExtractor) Emails(_ context.Context, data []byte) ([]string, error) {
	f.got = data
	return f.emails, f.err
}

type fakeSink struct {
	written   []string
	writePath string
	printed   []string
	writeErr  error
}

func (f *fakeSink) WriteFile(emails []string, path string) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	f.written = emails
	f.writePath = path
	return "/abs/" + path, nil
}

func (f *fakeSink) Print(emails []string) error {
	f.printed = emails
	return nil
}

func newTestPipeline(f *fakeFetcher, e *fakeExtractor, s *fakeSink) *Pipeline {
	return New(f, e, s, zerolog.Nop())
}

func TestRunFileMode(t *testing.T) {
	fetcher := &fakeFetcher{data: []byte("img")}
	extractor := &fakeExtractor{emails: []string{"a@b.co", "x@y.io"}}
	s := &fakeSink{}

	res, err := newTestPipeline(fetcher, extractor, s).Run(context.Background(), "photo.png", "out/emails.txt")
	require.NoError(t, err)

	assert.Equal(t, "photo.png", fetcher.got)
	assert.Equal(t, []byte("img"), extractor.got)
	assert.Equal(t, []string{"a@b.co", "x@y.io"}, s.written)
	assert.Equal(t, "out/emails.txt", s.writePath)
	assert.Empty(t, s.printed)
	assert.Equal(t, "/abs/out/emails.txt", res.OutputPath)
	assert.Equal(t, []string{"a@b.co", "x@y.io"}, res.Emails)
}

func TestRunConsoleMode(t *testing.T) {
	extractor := &fakeExtractor{emails: []string{"a@b.co"}}
	s := &fakeSink{}

	res, err := newTestPipeline(&fakeFetcher{data: []byte("img")}, extractor, s).
		Run(context.Background(), "photo.png", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"a@b.co"}, s.printed)
	assert.Empty(t, s.written)
	assert.Empty(t, res.OutputPath)
}

func TestRunNoEmailsFound(t *testing.T) {
	extractor := &fakeExtractor{emails: nil}
	s := &fakeSink{}

	res, err := newTestPipeline(&fakeFetcher{data: []byte("img")}, extractor, s).
		Run(context.Background(), "photo.png", "out/emails.txt")
	require.NoError(t, err)

	// Empty result: no file write, no print.
	assert.Empty(t, s.written)
	assert.Empty(t, s.printed)
	assert.Empty(t, res.Emails)
	assert.Empty(t, res.OutputPath)
}

func TestRunFetchFailureStopsPipeline(t *testing.T) {
	fetchErr := common.NewError(common.KindFetchFailure, "photo.png", errors.New("boom"))
	extractor := &fakeExtractor{}

	_, err := newTestPipeline(&fakeFetcher{err: fetchErr}, extractor, &fakeSink{}).
		Run(context.Background(), "photo.png", "")
	require.Error(t, err)
	assert.Equal(t, common.KindFetchFailure, common.KindOf(err))
	assert.Nil(t, extractor.got, "extractor must not run after a fetch failure")
}

func TestRunExtractFailureStopsPipeline(t *testing.T) {
	extractErr := common.NewError(common.KindProcessingFailure, "decode image", errors.New("bad bytes"))
	s := &fakeSink{}

	_, err := newTestPipeline(&fakeFetcher{data: []byte("img")}, &fakeExtractor{err: extractErr}, s).
		Run(context.Background(), "photo.png", "out.txt")
	require.Error(t, err)
	assert.Equal(t, common.KindProcessingFailure, common.KindOf(err))
	assert.Empty(t, s.written, "sink must not run after an extraction failure")
}

func TestRunPersistFailure(t *testing.T) {
	writeErr := common.NewError(common.KindPersistFailure, "/bad/path", errors.New("permission denied"))
	s := &fakeSink{writeErr: writeErr}

	_, err := newTestPipeline(&fakeFetcher{data: []byte("img")}, &fakeExtractor{emails: []string{"a@b.co"}}, s).
		Run(context.Background(), "photo.png", "/bad/path")
	require.Error(t, err)
	assert.Equal(t, common.KindPersistFailure, common.KindOf(err))
}
