// Package dto defines the Alpha Vantage response payloads.
package dto

// GlobalQuoteResponse はGLOBAL_QUOTE関数のレスポンスです。
// 呼び出し回数の制限に達した場合、Global Quoteの代わりにNoteまたはInformationが返されます。
type GlobalQuoteResponse struct {
	GlobalQuote  GlobalQuote `json:"Global Quote"`
	Note         string      `json:"Note"`
	Information  string      `json:"Information"`
	ErrorMessage string      `json:"Error Message"`
}

// GlobalQuote は単一銘柄の相場情報です。数値はすべて文字列で返されます。
type GlobalQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}
