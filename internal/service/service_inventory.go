package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/models"
)

// SlackInventoryTitle is the header of the S3 inventory Slack message.
const SlackInventoryTitle = "Clumio Inventory"

type inventoryService struct {
	clumio adapter.ClumioAdapter

	logger *logger.Logger
}

func NewInventoryService(clumio adapter.ClumioAdapter, logger *logger.Logger) InventoryService {
	return &inventoryService{
		clumio: clumio,
		logger: logger,
	}
}

// GetInventory implements [InventoryService]. The request is expected to be
// validated already.
func (s *inventoryService) GetInventory(ctx context.Context, req models.InventoryRequest) (any, error) {
	raw, err := s.clumio.GetInventory(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Type != models.S3 {
		return raw, nil
	}

	assets, err := parseS3Assets(raw)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().
		Int("assets", len(assets)).
		Msg("formatting s3 inventory for slack")

	return newInventorySlackMessage(assets)
}

func parseS3Assets(raw json.RawMessage) ([]models.S3Asset, error) {
	var page models.S3AssetsPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("%w: decode s3 assets: %w", adapter.ErrUpstreamMalformedResponse, err)
	}

	assets := make([]models.S3Asset, 0, len(page.Embedded.Items))
	for _, item := range page.Embedded.Items {
		assets = append(assets, models.S3Asset{
			BucketID:   string(item.BucketID),
			BucketName: item.BucketName,
		})
	}

	return assets, nil
}

func newInventorySlackMessage(assets []models.S3Asset) (*models.SlackMessage, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(assets); err != nil {
		return nil, fmt.Errorf("encode s3 assets: %w", err)
	}

	payload := bytes.TrimRight(buf.Bytes(), "\n")
	emoji := true

	return &models.SlackMessage{
		ResponseType: models.SlackResponseEphemeral,
		Blocks: []models.SlackBlock{
			{
				Type: models.SlackBlockHeader,
				Text: &models.SlackText{Type: models.SlackTextPlain, Text: SlackInventoryTitle, Emoji: &emoji},
			},
			{
				Type: models.SlackBlockSection,
				Text: &models.SlackText{Type: models.SlackTextMarkdown, Text: "```" + string(payload) + "```"},
			},
		},
	}, nil
}
