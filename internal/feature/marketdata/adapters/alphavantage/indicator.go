package alphavantage

import (
	"context"
	"net/http"
	"regexp"
	"strconv"

	"market_gateway/internal/feature/marketdata/adapters/alphavantage/dto"
	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/usecase"
)

// MaxIndicatorPoints は返却する直近の観測値の件数です。
const MaxIndicatorPoints = 10

// missingValue はAlpha Vantageが欠損値に使う記号です。
const missingValue = "."

// DefaultIndicators は利用者向けの指標名からAlpha Vantageの関数名への対応表です。
// キーはusecase.IndicatorAliasesと一致します。
var DefaultIndicators = map[string]string{
	"GDP":            "REAL_GDP",
	"GDP_PER_CAPITA": "REAL_GDP_PER_CAPITA",
	"INFLATION":      "INFLATION",
	"CPI":            "CPI",
	"UNEMPLOYMENT":   "UNEMPLOYMENT",
	"INTEREST_RATE":  "FEDERAL_FUNDS_RATE",
	"TREASURY_YIELD": "TREASURY_YIELD",
	"RETAIL_SALES":   "RETAIL_SALES",
}

var functionName = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// IndicatorAdapter はAlpha Vantageの経済指標関数から時系列を取得するIndicatorProvider実装です。
type IndicatorAdapter struct {
	c       client
	mapping map[string]string
}

// IndicatorAdapterがIndicatorProviderを実装していることをコンパイル時に検証します。
var _ usecase.IndicatorProvider = (*IndicatorAdapter)(nil)

// NewIndicatorAdapter はIndicatorAdapterを生成します。
// mappingがnilの場合はDefaultIndicatorsを使います。
// 対応表に空の名前や関数名として不正な値が含まれる場合はConfigurationErrorを返します。
func NewIndicatorAdapter(cfg Config, httpClient *http.Client, mapping map[string]string) (*IndicatorAdapter, error) {
	if mapping == nil {
		mapping = DefaultIndicators
	}
	m := make(map[string]string, len(mapping))
	for name, fn := range mapping {
		if name == "" || !functionName.MatchString(fn) {
			return nil, domain.Configuration("invalid indicator mapping %q -> %q", name, fn)
		}
		m[name] = fn
	}
	return &IndicatorAdapter{c: client{cfg: cfg, http: httpClient}, mapping: m}, nil
}

// Series は指標名に対応する関数名を返します。対応表にない名前はそのまま返します。
func (a *IndicatorAdapter) Series(name string) string {
	if fn, ok := a.mapping[name]; ok {
		return fn
	}
	return name
}

// GetIndicator は指標の直近MaxIndicatorPoints件の観測値を取得します。
func (a *IndicatorAdapter) GetIndicator(ctx context.Context, name string) (entity.IndicatorSeries, error) {
	series := a.Series(name)

	var body dto.EconomicResponse
	if err := a.c.query(ctx, series, nil, &body); err != nil {
		return entity.IndicatorSeries{}, err
	}
	if err := notice(body.Note, body.Information, body.ErrorMessage); err != nil {
		return entity.IndicatorSeries{}, err
	}
	if body.Name == "" && len(body.Data) == 0 {
		return entity.IndicatorSeries{}, domain.NotFound("indicator %q not found", name)
	}

	// データは新しい順に返されるため、先頭から欠損値を除いて詰めます
	points := make([]entity.IndicatorPoint, 0, MaxIndicatorPoints)
	for _, d := range body.Data {
		if len(points) == MaxIndicatorPoints {
			break
		}
		if d.Value == missingValue || d.Value == "" {
			continue
		}
		v, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			return entity.IndicatorSeries{}, domain.Upstream(http.StatusOK, "parse value %q: %v", d.Value, err)
		}
		points = append(points, entity.IndicatorPoint{Date: d.Date, Value: v})
	}

	return entity.IndicatorSeries{
		Indicator: name,
		Series:    series,
		Name:      body.Name,
		Interval:  body.Interval,
		Unit:      body.Unit,
		Data:      points,
	}, nil
}
