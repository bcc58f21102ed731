package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophjournal/internal/cryptox"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
	"github.com/dmitrijs2005/gophjournal/internal/models"
)

func newCodec(t *testing.T) *cryptox.Codec {
	t.Helper()
	c, err := cryptox.NewCodec(
		cryptox.FitSecret("YourSuperSecretKey123456789012345678", cryptox.KeySize),
		cryptox.FitSecret("1234567890123456", cryptox.IVSize),
	)
	require.NoError(t, err)
	return c
}

type fakeReplica struct {
	name  string
	blobs [][]byte
	err   error
}

func (f *fakeReplica) Put(ctx context.Context, name string, blob []byte) error {
	f.name = name
	f.blobs = append(f.blobs, blob)
	return f.err
}

func TestLoad_MissingFile_EmptyAndDirectoryCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "App_Data")
	path := filepath.Join(dir, "journal-entries.json")

	s := New(context.Background(), path, newCodec(t), logging.Discard())

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	got := s.Load(context.Background())
	require.NotNil(t, got)
	require.Empty(t, got)

	st := s.Status()
	assert.NoError(t, st.LastLoadError)
	assert.False(t, st.LastLoadAt.IsZero())
	assert.True(t, st.Durable())
}

func TestSaveThenLoad_FreshStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal-entries.json")
	ctx := context.Background()

	s1 := New(ctx, path, newCodec(t), logging.Discard())
	require.True(t, s1.Save(ctx, fixtureEntries()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, []byte("hello")), "file must not contain plaintext")

	s2 := New(ctx, path, newCodec(t), logging.Discard())
	got := s2.Load(ctx)
	require.Empty(t, cmp.Diff(fixtureEntries(), got))
	assert.Equal(t, 2, s2.Status().Loaded)
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal-entries.json")
	ctx := context.Background()
	s := New(ctx, path, newCodec(t), logging.Discard())

	require.True(t, s.Save(ctx, fixtureEntries()))
	require.True(t, s.Save(ctx, fixtureEntries()[:1]))

	got := s.Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Content)
}

func TestLoad_CorruptFile_SoftFailure(t *testing.T) {
	tests := []struct {
		name    string
		content func(t *testing.T) []byte
		wantIs  error
	}{
		{
			name:    "not block aligned",
			content: func(t *testing.T) []byte { return []byte("garbage") },
			wantIs:  cryptox.ErrDecryption,
		},
		{
			name: "valid ciphertext, invalid json",
			content: func(t *testing.T) []byte {
				b, err := newCodec(t).Encrypt([]byte("{ this is not json"))
				require.NoError(t, err)
				return b
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "journal-entries.json")
			require.NoError(t, os.WriteFile(path, tt.content(t), 0o600))

			var buf bytes.Buffer
			log, err := logging.New(&buf, "debug", "text")
			require.NoError(t, err)

			s := New(context.Background(), path, newCodec(t), log)

			var got []models.JournalEntry
			require.NotPanics(t, func() { got = s.Load(context.Background()) })
			require.Empty(t, got)

			st := s.Status()
			require.Error(t, st.LastLoadError)
			assert.ErrorIs(t, st.LastLoadError, ErrLoad)
			if tt.wantIs != nil {
				assert.ErrorIs(t, st.LastLoadError, tt.wantIs)
			}

			var le *LoadError
			require.ErrorAs(t, st.LastLoadError, &le)
			assert.Equal(t, path, le.Path)

			assert.Contains(t, buf.String(), "error loading journal entries from file")
		})
	}
}

func TestLoad_UnreadablePath(t *testing.T) {
	// a directory where the file should be
	path := t.TempDir()
	s := New(context.Background(), path, newCodec(t), logging.Discard())

	require.Empty(t, s.Load(context.Background()))
	assert.ErrorIs(t, s.Status().LastLoadError, ErrLoad)
}

func TestSave_Unwritable_SoftFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "App_Data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	path := filepath.Join(blocker, "journal-entries.json")

	ctx := context.Background()
	s := New(ctx, path, newCodec(t), logging.Discard())
	require.Error(t, s.Status().DirError)
	require.False(t, s.Status().Durable())

	ok := s.Save(ctx, fixtureEntries())
	require.False(t, ok)

	st := s.Status()
	assert.ErrorIs(t, st.LastSaveError, ErrSave)
	assert.False(t, st.Durable())
	assert.Zero(t, st.Saved)
}

func TestSave_Replica(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal-entries.json")
	ctx := context.Background()

	r := &fakeReplica{}
	s := New(ctx, path, newCodec(t), logging.Discard(), WithReplica(r))

	require.True(t, s.Save(ctx, fixtureEntries()))
	require.Len(t, r.blobs, 1)
	assert.Equal(t, "journal-entries.json", r.name)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, onDisk, r.blobs[0])
	assert.NoError(t, s.Status().ReplicaError)
}

func TestSave_ReplicaFailureDoesNotFailSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal-entries.json")
	ctx := context.Background()

	r := &fakeReplica{err: errors.New("bucket unreachable")}
	s := New(ctx, path, newCodec(t), logging.Discard(), WithReplica(r))

	require.True(t, s.Save(ctx, fixtureEntries()))

	st := s.Status()
	assert.NoError(t, st.LastSaveError)
	assert.EqualError(t, st.ReplicaError, "bucket unreachable")
	assert.True(t, st.Durable())
}

func TestSave_ReplicaSkippedWhenLocalWriteFails(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "App_Data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	ctx := context.Background()
	r := &fakeReplica{}
	s := New(ctx, filepath.Join(blocker, "j.json"), newCodec(t), logging.Discard(), WithReplica(r))

	require.False(t, s.Save(ctx, fixtureEntries()))
	assert.Empty(t, r.blobs)
}
