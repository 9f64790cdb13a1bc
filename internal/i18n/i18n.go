// Package i18n holds the user-facing label tables. Locale selection is a
// per-session concern of the frontend; the backend only resolves labels.
package i18n

const DefaultLocale = "KO"

// locales in display order; the first entry is the fallback.
var locales = []string{"KO", "EN"}

var translations = map[string]map[string]string{
	"KO": {
		"app_title":              "생산 현황 대시보드",
		"kpi_total_output":       "총 생산량",
		"kpi_avg_hourly":         "시간당 평균",
		"top_styles":             "상위 스타일",
		"hourly_trend":           "시간대별 추이",
		"hourly_detail_by_style": "스타일별 시간대 상세",
		"tab_summary":            "요약",
		"tab_trend":              "추이",
		"tab_detail":             "상세",
		"filters":                "필터",
		"locale":                 "언어",
		"date":                   "날짜",
		"line":                   "라인",
		"category":               "카테고리",
		"style":                  "스타일",
		"style_search":           "스타일 검색",
		"refresh_today":          "새로고침",
		"no_data":                "데이터가 없습니다",
		"download_csv":           "CSV 다운로드",
		"download_excel":         "Excel 다운로드",
		"table_missing":          "production_data 테이블을 찾을 수 없습니다. 데이터를 임포트하거나 스키마 설정을 확인하세요.",
	},
	"EN": {
		"app_title":              "Production Dashboard",
		"kpi_total_output":       "Total Output",
		"kpi_avg_hourly":         "Avg Hourly",
		"top_styles":             "Top Styles",
		"hourly_trend":           "Hourly Trend",
		"hourly_detail_by_style": "Hourly Detail by Style",
		"tab_summary":            "Summary",
		"tab_trend":              "Trend",
		"tab_detail":             "Detail",
		"filters":                "Filters",
		"locale":                 "Language",
		"date":                   "Date",
		"line":                   "Line",
		"category":               "Category",
		"style":                  "Style",
		"style_search":           "Style search",
		"refresh_today":          "Refresh",
		"no_data":                "No data",
		"download_csv":           "Download CSV",
		"download_excel":         "Download Excel",
		"table_missing":          "Table production_data not found. Import the sample data or fix the schema setting.",
	},
}

// T resolves a label. Unknown locales fall back to the default table, unknown
// keys fall back to the key itself so a missing entry is visible, not fatal.
func T(locale, key string) string {
	table, ok := translations[locale]
	if !ok {
		table = translations[DefaultLocale]
	}
	if label, ok := table[key]; ok {
		return label
	}
	return key
}

func Locales() []string {
	out := make([]string, len(locales))
	copy(out, locales)
	return out
}

// Labels returns the whole table for a locale so the frontend can fetch all
// strings in one call.
func Labels(locale string) map[string]string {
	table, ok := translations[locale]
	if !ok {
		table = translations[DefaultLocale]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
