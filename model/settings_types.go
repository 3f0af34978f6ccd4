package model

import "github.com/shopspring/decimal"

// SettingRow is a raw website_settings row; Value holds JSON.
type SettingRow struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}

type BankDetails struct {
	BankName      string `mapstructure:"bank_name" json:"bank_name"`
	AccountTitle  string `mapstructure:"account_title" json:"account_title"`
	AccountNumber string `mapstructure:"account_number" json:"account_number"`
	IBAN          string `mapstructure:"iban" json:"iban"`
	BranchCode    string `mapstructure:"branch_code" json:"branch_code"`
}

type CompanyInfo struct {
	Name            string          `mapstructure:"name" json:"name"`
	Phone           string          `mapstructure:"phone" json:"phone"`
	Email           string          `mapstructure:"email" json:"email"`
	Address         string          `mapstructure:"address" json:"address"`
	DeliveryCharges decimal.Decimal `mapstructure:"delivery_charges" json:"delivery_charges"`
	MinimumOrder    decimal.Decimal `mapstructure:"minimum_order" json:"minimum_order"`
}

type OrderMessages struct {
	Confirmation        string `mapstructure:"confirmation" json:"confirmation"`
	PaymentInstructions string `mapstructure:"payment_instructions" json:"payment_instructions"`
}

// WebsiteSettings is the decoded form of all website_settings rows.
type WebsiteSettings struct {
	BankDetails   BankDetails   `mapstructure:"bank_details" json:"bank_details"`
	CompanyInfo   CompanyInfo   `mapstructure:"company_info" json:"company_info"`
	OrderMessages OrderMessages `mapstructure:"order_messages" json:"order_messages"`
}
