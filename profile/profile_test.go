package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmanuel-nwafor/Fore-made-webApp/kvstore"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

func testSession() *models.Session {
	return &models.Session{UID: "u1", Email: "ada@example.com", DisplayName: "adaobi123"}
}

func TestAggregateRequiresSession(t *testing.T) {
	_, err := Aggregate(nil, nil, 0)
	assert.ErrorIs(t, err, models.ErrAuthRequired)
}

func TestAggregateWithFullExtras(t *testing.T) {
	raw := []byte(`{
		"name": "Ada Obi",
		"username": "adaobi042",
		"address": "12 Marina Rd, Lagos",
		"country": "Ghana",
		"phone": "+233-5551234",
		"createdAt": "2025-05-04T23:28:48.857Z"
	}`)

	view, err := Aggregate(testSession(), raw, 3)
	require.NoError(t, err)
	assert.Equal(t, "u1", view.UID)
	assert.Equal(t, "ada@example.com", view.Email)
	assert.Equal(t, "Ada Obi", view.Name)
	assert.Equal(t, "adaobi042", view.Username)
	assert.Equal(t, "Ghana", view.Country)
	assert.Equal(t, 3, view.OrderCount)
}

func TestAggregateFieldsFallBackIndividually(t *testing.T) {
	// name is a number, country is missing: each falls back on its own,
	// the rest of the blob still applies.
	raw := []byte(`{"name": 42, "username": "adaobi042", "phone": "+234-1112223"}`)

	view, err := Aggregate(testSession(), raw, 0)
	require.NoError(t, err)
	assert.Equal(t, "adaobi123", view.Name, "provider display name backfills a malformed name")
	assert.Equal(t, "adaobi042", view.Username)
	assert.Equal(t, "Nigeria", view.Country)
	assert.Equal(t, "Not provided", view.Address)
	assert.Equal(t, "+234-1112223", view.Phone)
}

func TestAggregateCorruptedNameField(t *testing.T) {
	raw := []byte(`{"name": "{\"oops\":true}"}`)
	view, err := Aggregate(testSession(), raw, 0)
	require.NoError(t, err)
	assert.Equal(t, "adaobi123", view.Name)
}

func TestAggregateMalformedBlob(t *testing.T) {
	view, err := Aggregate(testSession(), []byte("{nope"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Not provided", view.Address)
	assert.Equal(t, "Nigeria", view.Country)
}

func TestValidateAvatar(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, bytes.Repeat([]byte{0}, 64)...)

	contentType, err := ValidateAvatar(png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}

func TestValidateAvatarRejectsNonImage(t *testing.T) {
	_, err := ValidateAvatar([]byte("#!/bin/sh\necho hi"))
	var imgErr *models.InvalidImageError
	require.ErrorAs(t, err, &imgErr)
	assert.Contains(t, imgErr.Reason, "valid image")
}

func TestValidateAvatarRejectsOversize(t *testing.T) {
	big := make([]byte, MaxAvatarBytes+1)
	copy(big, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})

	_, err := ValidateAvatar(big)
	var imgErr *models.InvalidImageError
	require.ErrorAs(t, err, &imgErr)
	assert.Contains(t, imgErr.Reason, "less than 5MB")
}

func TestSaveAvatarReplacesPriorImage(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.InitExtras(ctx, "u1", models.ProfileExtras{Name: "Ada Obi", ProfileImage: "data:image/gif;base64,old"}))

	png := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, bytes.Repeat([]byte{0}, 16)...)
	view, err := svc.SaveAvatar(ctx, testSession(), png)
	require.NoError(t, err)
	assert.Contains(t, view.ProfileImage, "data:image/png;base64,")
	assert.NotContains(t, view.ProfileImage, "old")
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.InitExtras(ctx, "u1", models.ProfileExtras{Name: "Ada Obi", Phone: "+234-1112223"}))

	addr := "5 Allen Ave"
	view, err := svc.Update(ctx, testSession(), UpdateInput{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "5 Allen Ave", view.Address)
	assert.Equal(t, "Ada Obi", view.Name)
	assert.Equal(t, "+234-1112223", view.Phone)
}

func TestInitExtrasDoesNotOverwrite(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.InitExtras(ctx, "u1", models.ProfileExtras{Name: "First"}))
	require.NoError(t, svc.InitExtras(ctx, "u1", models.ProfileExtras{Name: "Second"}))

	view, err := svc.View(ctx, testSession())
	require.NoError(t, err)
	assert.Equal(t, "First", view.Name)
}

func TestOrderCount(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t, 0, svc.OrderCount(ctx, "u1"), "missing history counts as zero")

	orders, err := json.Marshal([]map[string]any{{"id": "o1"}, {"id": "o2"}})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, kvstore.OrderHistoryKey("u1"), string(orders)))
	assert.Equal(t, 2, svc.OrderCount(ctx, "u1"))

	require.NoError(t, store.Set(ctx, kvstore.OrderHistoryKey("u1"), "{bad"))
	assert.Equal(t, 0, svc.OrderCount(ctx, "u1"), "malformed history counts as zero")
}
