package database

import (
	"context"

	"storefront/model"
)

func (s *Store) ListWebsiteSettings(ctx context.Context) ([]model.SettingRow, error) {
	rows := []model.SettingRow{}
	if err := s.selectAll(ctx, &rows, `SELECT key, value FROM website_settings ORDER BY key`); err != nil {
		return nil, wrap("ListWebsiteSettings", err)
	}
	return rows, nil
}
