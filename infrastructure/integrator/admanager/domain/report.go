package admanagerdomain

import (
	"time"
)

const (
	ReportTypeHistorical = "HISTORICAL"

	DimensionKeyValuesName = "KEY_VALUES_NAME"
	DimensionDate          = "DATE"

	MetricRevenue     = "AD_EXCHANGE_REVENUE"
	MetricImpressions = "AD_EXCHANGE_IMPRESSIONS"
	MetricClicks      = "AD_EXCHANGE_CLICKS"

	OperationContains = "CONTAINS"
	OperationIn       = "IN"
)

// Report é o recurso networks/{code}/reports da API REST do Ad Manager
type Report struct {
	Name             string           `json:"name,omitempty"`
	ReportID         string           `json:"reportId,omitempty"`
	DisplayName      string           `json:"displayName,omitempty"`
	ReportDefinition ReportDefinition `json:"reportDefinition"`
}

type ReportDefinition struct {
	Dimensions []string  `json:"dimensions"`
	Metrics    []string  `json:"metrics"`
	DateRange  DateRange `json:"dateRange"`
	Filters    []Filter  `json:"filters,omitempty"`
	ReportType string    `json:"reportType"`
	TimeZone   string    `json:"timeZone,omitempty"`
}

type DateRange struct {
	Fixed *FixedDateRange `json:"fixed,omitempty"`
}

type FixedDateRange struct {
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
}

type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func NewDate(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

type Filter struct {
	FieldFilter *FieldFilter `json:"fieldFilter,omitempty"`
}

type FieldFilter struct {
	Field     Field   `json:"field"`
	Operation string  `json:"operation"`
	Values    []Value `json:"values"`
}

type Field struct {
	Dimension string `json:"dimension,omitempty"`
	Metric    string `json:"metric,omitempty"`
}

// Operation é a operação de longa duração retornada por reports/{id}:run
type Operation struct {
	Name     string           `json:"name"`
	Done     bool             `json:"done"`
	Error    *OperationError  `json:"error,omitempty"`
	Response *RunReportResult `json:"response,omitempty"`
}

type OperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RunReportResult struct {
	ReportResult string `json:"reportResult"`
}

type FetchRowsResponse struct {
	Rows          []Row  `json:"rows"`
	TotalRowCount int    `json:"totalRowCount"`
	NextPageToken string `json:"nextPageToken"`
}

type Row struct {
	DimensionValues   []Value            `json:"dimensionValues"`
	MetricValueGroups []MetricValueGroup `json:"metricValueGroups"`
}

type MetricValueGroup struct {
	PrimaryValues []Value `json:"primaryValues"`
}
