package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentStoreContract runs a suite of tests to verify that a DocumentStore implementation
// adheres to the defined interface contract.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405") + ".tex"
	content := latex.NewDocument(domain.Of(domain.Branch("A", domain.Of(domain.Leaf("B")), domain.Absent()))).String()

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, content)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, content, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, "first"))
		require.NoError(t, store.Save(ctx, name, "second"))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "second", loaded)
	})

	t.Run("Empty Name", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, "", content), domain.ErrEmptyName)
		_, err := store.Load(ctx, "")
		assert.ErrorIs(t, err, domain.ErrEmptyName)
		assert.ErrorIs(t, store.Delete(ctx, ""), domain.ErrEmptyName)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, content))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound, "Load after Delete should return ErrDocumentNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		n1 := "1-" + name
		n2 := "2-" + name
		_ = store.Save(ctx, n1, content)
		_ = store.Save(ctx, n2, content)

		defer func() {
			_ = store.Delete(ctx, n1)
			_ = store.Delete(ctx, n2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, n1)
		assert.Contains(t, names, n2)
	})
}
