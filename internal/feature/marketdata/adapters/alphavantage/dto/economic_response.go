package dto

// EconomicResponse は経済指標関数（REAL_GDP、CPIなど）のレスポンスです。
type EconomicResponse struct {
	Name         string          `json:"name"`
	Interval     string          `json:"interval"`
	Unit         string          `json:"unit"`
	Data         []EconomicPoint `json:"data"`
	Note         string          `json:"Note"`
	Information  string          `json:"Information"`
	ErrorMessage string          `json:"Error Message"`
}

// EconomicPoint は時系列の1件分です。欠損値は "." で表されます。
type EconomicPoint struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}
