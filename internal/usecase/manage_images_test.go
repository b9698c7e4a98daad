package usecases_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2pdf/internal/domain/entities"
	infraRepos "img2pdf/internal/infrastructure/repositories"
	usecases "img2pdf/internal/usecase"
)

func TestManageImages_RefreshAfterEachMutation(t *testing.T) {
	seq := entities.NewImageSequence()
	uc := usecases.NewManageImagesUseCase(seq, &recordingLogger{})

	var refreshes [][]string
	uc.SetOnChange(func(entries []entities.ImageEntry) {
		paths := make([]string, len(entries))
		for i, e := range entries {
			paths[i] = e.Path
		}
		refreshes = append(refreshes, paths)
	})

	uc.Append("a.png", "b.png", "c.jpg")
	uc.Move(2, entities.MoveUp)
	uc.Remove(0)

	assert.Equal(t, [][]string{
		{"a.png", "b.png", "c.jpg"},
		{"a.png", "c.jpg", "b.png"},
		{"c.jpg", "b.png"},
	}, refreshes)

	assert.Equal(t, 2, uc.Size())
	assert.Equal(t, 2, seq.Len(), "the injected sequence is the one being mutated")
}

func TestManageImages_NoOpsDoNotRefresh(t *testing.T) {
	uc := usecases.NewManageImagesUseCase(nil, nil)
	uc.Append("a.png")

	refreshes := 0
	uc.SetOnChange(func([]entities.ImageEntry) { refreshes++ })

	uc.Append()
	uc.Move(0, entities.MoveUp)
	uc.Move(0, entities.MoveDown)
	uc.Remove(3)
	uc.Remove(-1)

	assert.Zero(t, refreshes)
	assert.Equal(t, []entities.ImageEntry{{Path: "a.png"}}, uc.Entries())
}

func TestManageImages_CanConvert(t *testing.T) {
	uc := usecases.NewManageImagesUseCase(nil, nil)
	assert.False(t, uc.CanConvert())

	uc.Append("a.png")
	assert.True(t, uc.CanConvert())

	uc.Remove(0)
	assert.False(t, uc.CanConvert())
}

func TestExpandImagePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2.png", "1.jpg", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	paths, err := usecases.ExpandImagePaths(infraRepos.NewFileSystemRepository(), []string{"first.png", dir, "last.png"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"first.png",
		filepath.Join(dir, "1.jpg"),
		filepath.Join(dir, "2.png"),
		"last.png",
	}, paths)
}
