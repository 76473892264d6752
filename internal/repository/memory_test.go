package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 3)
	require.Len(t, snap.Communities, 1)
	assert.Equal(t, "jose", snap.Users[0].Login)
}

// O snapshot devolvido não pode compartilhar memória com o guardado
func TestInMemoryStoreIsolatesSnapshots(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	original := sampleSnapshot()
	require.NoError(t, store.Save(ctx, original))

	// mutações no snapshot original não vazam para o store
	original.Users[0].Name = "Alterado"
	original.Users[0].Friends[0] = "outro"
	original.Communities[0].Members = append(original.Communities[0].Members, "intruso")

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "José", snap.Users[0].Name)
	assert.Equal(t, []string{"maria"}, snap.Users[0].Friends)
	assert.Equal(t, []string{"jose", "maria"}, snap.Communities[0].Members)

	// e mutações no snapshot carregado também não
	snap.Users[0].Profile["cidade"] = "Recife"

	snap2, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maceió", snap2.Users[0].Profile["cidade"])
}

func TestInMemoryStoreClear(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSnapshot()))
	require.NoError(t, store.Clear(ctx))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Communities)
}
