// Package config loads the toolkit configuration. The configuration carries
// the column synonym tables used by every resolver, the vendor segment
// definitions for the inventory merge, and per-product unit price overrides.
//
// The toolkit runs without any configuration file; Load falls back to the
// built-in defaults, which mirror the column naming of the store's known
// export formats. A YAML file overrides individual sections wholesale.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	// OutputDir is where generated spreadsheets are written when a command
	// does not receive an explicit output path.
	OutputDir string `yaml:"output_dir"`

	// Sales configures column resolution for the sales export.
	Sales SalesColumns `yaml:"sales"`

	// Stock configures column resolution for inventory sheets.
	Stock StockColumns `yaml:"stock"`

	// Settlement configures column resolution for the two settlement exports.
	Settlement SettlementColumns `yaml:"settlement"`

	// Merge configures the base-side columns and vendor segments of the
	// inventory merge.
	Merge MergeColumns `yaml:"merge"`

	// JoinKeyGroups are the ordered candidate synonym groups tried when
	// detecting a join key between two sheets. Group order is a deliberate
	// priority: product name before barcode before product code.
	JoinKeyGroups [][]string `yaml:"join_key_groups"`

	// CompareNameSynonyms resolve the product-name column for the compare
	// command.
	CompareNameSynonyms []string `yaml:"compare_name_synonyms"`

	// UnitPriceOverrides hard-pins the unit price of specific products
	// regardless of what the source data records. Used for packaging items
	// whose exported price is known to be wrong.
	UnitPriceOverrides map[string]float64 `yaml:"unit_price_overrides"`
}

// SalesColumns lists the header synonyms, in priority order, for each
// semantic role of a sales-export row.
type SalesColumns struct {
	Name          []string `yaml:"name"`
	Quantity      []string `yaml:"quantity"`
	Revenue       []string `yaml:"revenue"`
	UnitPrice     []string `yaml:"unit_price"`
	TransactionID []string `yaml:"transaction_id"`
	PaymentDate   []string `yaml:"payment_date"`
	PurchaseDate  []string `yaml:"purchase_date"`
}

// StockColumns lists the header synonyms for inventory sheet roles.
type StockColumns struct {
	Name     []string `yaml:"name"`
	Quantity []string `yaml:"quantity"`
	Location []string `yaml:"location"`
}

// SettlementColumns lists the header substrings used to locate columns in
// the two settlement exports. Settlement files use contains-matching rather
// than exact synonym matching because their headers embed variable suffixes.
type SettlementColumns struct {
	Approval     []string `yaml:"approval"`
	ReportDate   []string `yaml:"report_date"`
	ReportAmount []string `yaml:"report_amount"`
	ReportRemark []string `yaml:"report_remark"`
	AdminDate    []string `yaml:"admin_date"`
	AdminAmount  []string `yaml:"admin_amount"`
}

// MergeColumns configures the inventory merge: base-side synonyms, the
// generic source-side synonyms, and the per-vendor segments.
type MergeColumns struct {
	BaseQuantity []string `yaml:"base_quantity"`
	BaseLocation []string `yaml:"base_location"`
	BaseVendor   []string `yaml:"base_vendor"`
	// SourceQuantity and SourceLocation are the generic source-side synonym
	// sets, used when a row's vendor does not select a segment or the
	// segment's own columns are missing.
	SourceQuantity []string        `yaml:"source_quantity"`
	SourceLocation []string        `yaml:"source_location"`
	Segments       []VendorSegment `yaml:"segments"`
}

// VendorSegment names one store location and the source-sheet columns that
// carry its quantity and display location.
type VendorSegment struct {
	// Vendor is the value of the base sheet's vendor column that selects
	// this segment, compared after normalization.
	Vendor   string   `yaml:"vendor"`
	Quantity []string `yaml:"quantity"`
	Location []string `yaml:"location"`
}

// Load reads the configuration from path. A missing file is not an error:
// the built-in defaults are returned so the toolkit works out of the box.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration matching the store's known
// export formats.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	s := &cfg.Sales
	if len(s.Name) == 0 {
		s.Name = []string{"개별상품 명", "상품명"}
	}
	if len(s.Quantity) == 0 {
		s.Quantity = []string{"개별상품 개수", "수량"}
	}
	if len(s.Revenue) == 0 {
		s.Revenue = []string{"결제금액", "매출금액(배송비포함)"}
	}
	if len(s.UnitPrice) == 0 {
		s.UnitPrice = []string{"개별상품 금액", "상품 개별 금액"}
	}
	if len(s.TransactionID) == 0 {
		s.TransactionID = []string{"구매UID", "구매 UID", "주문번호"}
	}
	if len(s.PaymentDate) == 0 {
		s.PaymentDate = []string{"결제일시", "결제 일시", "결제일", "결제시간", "결제 시간"}
	}
	if len(s.PurchaseDate) == 0 {
		s.PurchaseDate = []string{"구매일시", "구매 일시"}
	}

	st := &cfg.Stock
	if len(st.Name) == 0 {
		st.Name = []string{"상품이름", "상품명", "제품명", "개별상품 명"}
	}
	if len(st.Quantity) == 0 {
		st.Quantity = []string{"재고수량", "재고 수량", "재고", "수량"}
	}
	if len(st.Location) == 0 {
		st.Location = []string{"상품 매장 진열 위치", "매장 진열 위치", "진열 위치", "진열위치"}
	}

	se := &cfg.Settlement
	if len(se.Approval) == 0 {
		se.Approval = []string{"승인번호"}
	}
	if len(se.ReportDate) == 0 {
		se.ReportDate = []string{"승인일"}
	}
	if len(se.ReportAmount) == 0 {
		se.ReportAmount = []string{"거래금액"}
	}
	if len(se.ReportRemark) == 0 {
		se.ReportRemark = []string{"비고"}
	}
	if len(se.AdminDate) == 0 {
		se.AdminDate = []string{"결제일시", "구매일시"}
	}
	if len(se.AdminAmount) == 0 {
		se.AdminAmount = []string{"매출금액(배송비포함)", "주문금액", "결제금액"}
	}

	m := &cfg.Merge
	if len(m.BaseQuantity) == 0 {
		m.BaseQuantity = []string{"재고수량", "재고 수량", "수량", "현재고", "재고"}
	}
	if len(m.BaseLocation) == 0 {
		m.BaseLocation = []string{"상품 매장 진열 위치", "진열 위치", "매장 진열 위치", "매장위치", "위치"}
	}
	if len(m.BaseVendor) == 0 {
		m.BaseVendor = []string{"업체", "매장", "지점", "매장명"}
	}
	if len(m.SourceQuantity) == 0 {
		m.SourceQuantity = []string{"신논현재고", "신논 현재고", "현재고(신논현)", "신논현 현재고", "현재고 신논현"}
	}
	if len(m.SourceLocation) == 0 {
		m.SourceLocation = []string{"진열위치 (신논현)", "진열위치(신논현)", "진열 위치 (신논현)", "신논현 진열 위치", "신논현 위치", "신논 진열 위치"}
	}
	if len(m.Segments) == 0 {
		m.Segments = []VendorSegment{
			{
				Vendor:   "라페어 신논현점",
				Quantity: []string{"신논현재고", "신논 현재고", "현재고(신논현)", "신논현 현재고", "현재고 신논현"},
				Location: []string{"진열위치(신논현)", "진열위치 (신논현)", "진열 위치 (신논현)", "신논현 진열 위치", "신논현 위치"},
			},
			{
				Vendor:   "라페어 논현점",
				Quantity: []string{"논현재고", "논현 현재고", "현재고(논현)", "현재고 논현"},
				Location: []string{"진열위치(논현)", "진열위치 (논현)", "진열 위치 (논현)", "논현 진열 위치", "논현 위치"},
			},
		}
	}

	if len(cfg.JoinKeyGroups) == 0 {
		cfg.JoinKeyGroups = [][]string{
			{"상품명", "상품이름", "제품명", "name", "product", "title"},
			{"바코드", "barcode", "ean", "ean13", "ean-13", "qr", "qr코드"},
			{"상품코드", "상품 코드", "product code", "sku", "품번", "품목코드", "item code"},
		}
	}
	if len(cfg.CompareNameSynonyms) == 0 {
		cfg.CompareNameSynonyms = []string{"상품이름", "상품명", "제품명", "name", "product", "title"}
	}
	if cfg.UnitPriceOverrides == nil {
		cfg.UnitPriceOverrides = map[string]float64{
			"쇼핑백 중": 100,
			"쇼핑백 대": 200,
		}
	}
}

func validate(cfg *Config) error {
	for i, group := range cfg.JoinKeyGroups {
		if len(group) == 0 {
			return fmt.Errorf("join_key_groups[%d] is empty", i)
		}
	}
	for i, seg := range cfg.Merge.Segments {
		if seg.Vendor == "" {
			return fmt.Errorf("merge.segments[%d] is missing a vendor value", i)
		}
	}
	for name, price := range cfg.UnitPriceOverrides {
		if price < 0 {
			return fmt.Errorf("unit_price_overrides[%q] is negative", name)
		}
	}
	return nil
}
