package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/quick-docs/model"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	drafts := Memory()

	values := model.ValueSet{
		"clientName": "ACME",
		"otherCosts": 50.0,
		"workItems": []model.Row{
			{"description": "Paint wall", "area": "100", "rate": "20"},
		},
	}

	require.NoError(t, drafts.Save(ctx, "work-order", values))

	loaded, ok, err := drafts.Load(ctx, "work-order")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, values, loaded)
}

func TestMemoryLoadAbsent(t *testing.T) {
	_, ok, err := Memory().Load(context.Background(), "work-order")
	require.NoError(t, err)
	assert.False(t, ok, "absence is not an error")
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	drafts := Memory()

	require.NoError(t, drafts.Save(ctx, "invoice", model.ValueSet{"billToName": "First"}))
	require.NoError(t, drafts.Save(ctx, "invoice", model.ValueSet{"billToName": "Second"}))

	loaded, ok, err := drafts.Load(ctx, "invoice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Second", loaded["billToName"], "at most one draft per template id")
}

func TestMemoryDraftsAreIndependentPerTemplate(t *testing.T) {
	ctx := context.Background()
	drafts := Memory()

	require.NoError(t, drafts.Save(ctx, "invoice", model.ValueSet{"n": 1.0}))
	require.NoError(t, drafts.Save(ctx, "work-order", model.ValueSet{"n": 2.0}))

	loaded, ok, err := drafts.Load(ctx, "invoice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1.0, loaded["n"])
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	drafts := Memory()

	require.NoError(t, drafts.Save(ctx, "invoice", model.ValueSet{}))
	require.NoError(t, drafts.Delete(ctx, "invoice"))

	_, ok, err := drafts.Load(ctx, "invoice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, drafts.Delete(ctx, "invoice"), "deleting an absent draft is a no-op")
}

func TestMemoryList(t *testing.T) {
	ctx := context.Background()
	drafts := Memory()

	require.NoError(t, drafts.Save(ctx, "invoice", model.ValueSet{}))
	require.NoError(t, drafts.Save(ctx, "letterhead", model.ValueSet{}))

	list, err := drafts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	ids := map[string]bool{}
	for _, d := range list {
		ids[d.TemplateID] = true
		assert.False(t, d.UpdatedAt.IsZero())
	}
	assert.True(t, ids["invoice"] && ids["letterhead"])
}
