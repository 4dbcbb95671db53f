// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/mock"
	"github.com/MKhiriev/clumio-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestInventorySvc(t *testing.T, ctrl *gomock.Controller) (InventoryService, *mock.MockClumioAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockClumioAdapter(ctrl)
	return NewInventoryService(mockAdapter, logger.Nop()), mockAdapter
}

// ── S3 ──────────────────────────────────────────────────────────────────────

func TestInventoryService_S3_FormatsSlackMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestInventorySvc(t, ctrl)
	ctx := context.Background()
	req := models.InventoryRequest{Type: models.S3}

	upstream := json.RawMessage(`{
		"_embedded": {"items": [
			{"bucket_id": "101", "bucket_name": "logs", "region": "us-west-2"},
			{"bucket_id": 202, "bucket_name": "backups"},
			{"bucket_name": "no-id"}
		]},
		"total_count": 3
	}`)
	mockAdapter.EXPECT().GetInventory(ctx, req).Return(upstream, nil)

	got, err := svc.GetInventory(ctx, req)
	require.NoError(t, err)

	msg, ok := got.(*models.SlackMessage)
	require.True(t, ok, "expected *models.SlackMessage, got %T", got)

	expectedPayload := "```[\n" +
		"  {\n    \"bucket-id\": \"101\",\n    \"bucket-name\": \"logs\"\n  },\n" +
		"  {\n    \"bucket-id\": \"202\",\n    \"bucket-name\": \"backups\"\n  },\n" +
		"  {\n    \"bucket-id\": \"\",\n    \"bucket-name\": \"no-id\"\n  }\n" +
		"]```"

	assert.Equal(t, models.SlackResponseEphemeral, msg.ResponseType)
	require.Len(t, msg.Blocks, 2)
	assert.Equal(t, models.SlackBlockHeader, msg.Blocks[0].Type)
	assert.Equal(t, models.SlackTextPlain, msg.Blocks[0].Text.Type)
	assert.Equal(t, "Clumio Inventory", msg.Blocks[0].Text.Text)
	require.NotNil(t, msg.Blocks[0].Text.Emoji)
	assert.True(t, *msg.Blocks[0].Text.Emoji)
	assert.Equal(t, models.SlackBlockSection, msg.Blocks[1].Type)
	assert.Equal(t, models.SlackTextMarkdown, msg.Blocks[1].Text.Type)
	assert.Nil(t, msg.Blocks[1].Text.Emoji)
	assert.Equal(t, expectedPayload, msg.Blocks[1].Text.Text)
}

func TestInventoryService_S3_MissingEmbeddedIsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestInventorySvc(t, ctrl)
	mockAdapter.EXPECT().GetInventory(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"total_count":0}`), nil)

	got, err := svc.GetInventory(context.Background(), models.InventoryRequest{Type: models.S3})
	require.NoError(t, err)

	msg := got.(*models.SlackMessage)
	assert.Equal(t, "```[]```", msg.Blocks[1].Text.Text)
}

func TestInventoryService_S3_SlackJSONShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestInventorySvc(t, ctrl)
	mockAdapter.EXPECT().GetInventory(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"_embedded":{"items":[]}}`), nil)

	got, err := svc.GetInventory(context.Background(), models.InventoryRequest{Type: models.S3})
	require.NoError(t, err)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"response_type": "ephemeral",
		"blocks": [
			{"type": "header", "text": {"type": "plain_text", "text": "Clumio Inventory", "emoji": true}},
			{"type": "section", "text": {"type": "mrkdwn", "text": "`+"```[]```"+`"}}
		]
	}`, string(body))
}

func TestInventoryService_S3_MalformedUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestInventorySvc(t, ctrl)
	mockAdapter.EXPECT().GetInventory(gomock.Any(), gomock.Any()).Return(json.RawMessage(`[1,2,3]`), nil)

	_, err := svc.GetInventory(context.Background(), models.InventoryRequest{Type: models.S3})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUpstreamMalformedResponse)
}

// ── EC2 ─────────────────────────────────────────────────────────────────────

func TestInventoryService_EC2_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestInventorySvc(t, ctrl)
	upstream := json.RawMessage(`{"_embedded":{"items":[{"instance_id":"i-1"}]}}`)
	mockAdapter.EXPECT().GetInventory(gomock.Any(), models.InventoryRequest{Type: models.EC2}).Return(upstream, nil)

	got, err := svc.GetInventory(context.Background(), models.InventoryRequest{Type: models.EC2})

	require.NoError(t, err)
	assert.Equal(t, upstream, got)
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestInventoryService_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestInventorySvc(t, ctrl)
	upstreamErr := errors.New("connection refused")
	mockAdapter.EXPECT().GetInventory(gomock.Any(), gomock.Any()).Return(nil, upstreamErr)

	got, err := svc.GetInventory(context.Background(), models.InventoryRequest{Type: models.S3})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, upstreamErr)
}
