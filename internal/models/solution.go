package models

import "time"

// BlueprintResult is the outcome of one blueprint search
type BlueprintResult struct {
	BlueprintID int           `json:"blueprintId"`
	Budget      int           `json:"budget"`
	MaxGeodes   int           `json:"maxGeodes"`
	Nodes       int64         `json:"nodes"`
	Pruned      int64         `json:"pruned"`
	Elapsed     time.Duration `json:"elapsedNs"`
}

// Quality returns the id-weighted score of this result
func (r BlueprintResult) Quality() int {
	return r.MaxGeodes * r.BlueprintID
}

// Report combines both passes of a run
type Report struct {
	Quality    []BlueprintResult `json:"quality"`
	QualitySum int               `json:"qualitySum"`
	Top        []BlueprintResult `json:"top"`
	TopProduct int               `json:"topProduct"`
	Elapsed    time.Duration     `json:"elapsedNs"`
}
