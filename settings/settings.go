package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/model"
)

type Store interface {
	ListWebsiteSettings(ctx context.Context) ([]model.SettingRow, error)
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook lets numeric and string JSON values land in decimal fields.
func decimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		if strings.TrimSpace(v) == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(strings.TrimSpace(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	}
	return data, nil
}

// Decode assembles WebsiteSettings from key/value rows. Unknown keys are
// ignored and a row whose value is not JSON is skipped with a warning.
func Decode(rows []model.SettingRow) (model.WebsiteSettings, error) {
	raw := make(map[string]interface{}, len(rows))
	for _, row := range rows {
		var v interface{}
		if err := json.Unmarshal([]byte(row.Value), &v); err != nil {
			zap.L().Warn("skip website setting with invalid JSON", zap.String("key", row.Key), zap.Error(err))
			continue
		}
		raw[row.Key] = v
	}

	var out model.WebsiteSettings
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decimalHook,
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, fmt.Errorf("settings decoder failed: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return out, fmt.Errorf("decode website settings failed: %w", err)
	}
	return out, nil
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context) (model.WebsiteSettings, error) {
	rows, err := s.store.ListWebsiteSettings(ctx)
	if err != nil {
		return model.WebsiteSettings{}, err
	}
	return Decode(rows)
}

// Confirmation is what the order-success page shows. Phone doubles as the
// order reference.
type Confirmation struct {
	Phone               string            `json:"phone"`
	Message             string            `json:"message"`
	PaymentInstructions string            `json:"payment_instructions"`
	BankDetails         model.BankDetails `json:"bank_details"`
	Company             model.CompanyInfo `json:"company"`
}

// NewConfirmation fills the {phone} and {company} placeholders of the
// configured messages.
func NewConfirmation(ws model.WebsiteSettings, phone string) Confirmation {
	r := strings.NewReplacer("{phone}", phone, "{company}", ws.CompanyInfo.Name)
	return Confirmation{
		Phone:               phone,
		Message:             r.Replace(ws.OrderMessages.Confirmation),
		PaymentInstructions: r.Replace(ws.OrderMessages.PaymentInstructions),
		BankDetails:         ws.BankDetails,
		Company:             ws.CompanyInfo,
	}
}
