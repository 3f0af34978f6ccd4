package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ParsedProductCSVRecord is one row of a products seed file.
type ParsedProductCSVRecord struct {
	ID                 string
	ProductType        string
	Brand              string
	SubType            string
	PricePerBag        decimal.Decimal
	Description        string
	WebsiteDescription string
	ImageURL           string
	CurrentStock       int64
	LowStockThreshold  int64
	ShowOnWebsite      bool
}

const defaultLowStockThreshold = 100

// ParseProductCSV reads products with stock counts in bags. Rows missing
// id, brand, product_type or a valid price are skipped with a warning.
func ParseProductCSV(r io.Reader) ([]ParsedProductCSVRecord, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("product CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product CSV header: %w", err)
	}

	colIndex, err := getColIndex(header, []string{"id", "product_type", "brand", "price_per_bag"})
	if err != nil {
		return nil, err
	}

	var records []ParsedProductCSVRecord
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			zap.L().Warn("product CSV read error, skipping row", zap.Int("line", line), zap.Error(err))
			continue
		}
		get := fieldGetter(colIndex, rec)

		id, brand, productType := get("id"), get("brand"), get("product_type")
		if id == "" || brand == "" || productType == "" {
			zap.L().Warn("product CSV row missing id, brand or product_type, skipping", zap.Int("line", line))
			continue
		}
		price, err := decimal.NewFromString(get("price_per_bag"))
		if err != nil || price.IsNegative() {
			zap.L().Warn("product CSV row has invalid price, skipping", zap.Int("line", line), zap.String("id", id))
			continue
		}

		stock, _ := strconv.ParseInt(get("current_stock"), 10, 64)
		if stock < 0 {
			stock = 0
		}
		threshold, err := strconv.ParseInt(get("low_stock_threshold"), 10, 64)
		if err != nil || threshold <= 0 {
			threshold = defaultLowStockThreshold
		}
		show := true
		if v := get("show_on_website"); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				show = b
			}
		}

		records = append(records, ParsedProductCSVRecord{
			ID:                 id,
			ProductType:        productType,
			Brand:              brand,
			SubType:            get("sub_type"),
			PricePerBag:        price,
			Description:        get("description"),
			WebsiteDescription: get("website_description"),
			ImageURL:           get("image_url"),
			CurrentStock:       stock,
			LowStockThreshold:  threshold,
			ShowOnWebsite:      show,
		})
	}
	return records, nil
}
