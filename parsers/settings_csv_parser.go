package parsers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ParsedSettingCSVRecord is one website_settings row; Value must be JSON.
type ParsedSettingCSVRecord struct {
	Key   string
	Value string
}

func ParseSettingsCSV(r io.Reader) ([]ParsedSettingCSVRecord, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("settings CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings CSV header: %w", err)
	}
	colIndex, err := getColIndex(header, []string{"key", "value"})
	if err != nil {
		return nil, err
	}

	var records []ParsedSettingCSVRecord
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			zap.L().Warn("settings CSV read error, skipping row", zap.Int("line", line), zap.Error(err))
			continue
		}
		get := fieldGetter(colIndex, rec)
		key, value := get("key"), get("value")
		if key == "" || !json.Valid([]byte(value)) {
			zap.L().Warn("settings CSV row has empty key or non-JSON value, skipping", zap.Int("line", line))
			continue
		}
		records = append(records, ParsedSettingCSVRecord{Key: key, Value: value})
	}
	return records, nil
}
