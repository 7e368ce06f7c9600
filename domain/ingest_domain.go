package domain

var (
	MessageSuccessIngestBatch = "batch ingested successfully"
	MessageFailedIngestBatch  = "failed to ingest batch"
)

type (
	IngestBatchRequest struct {
		Menus        []IngestMenuRequest `json:"menus" validate:"required"`
		SkipExisting bool                `json:"skip_existing"`
		Concurrency  int                 `json:"concurrency" validate:"gte=0,lte=32"`
	}

	// BatchItemRef identifies one record of a batch in results, independent of
	// whether its ingestion succeeded.
	BatchItemRef struct {
		Index        int    `json:"index"`
		MenuName     string `json:"menu_name"`
		LocationName string `json:"location_name"`
		StartTime    string `json:"start_time"`
		EndTime      string `json:"end_time"`
	}

	BatchItemFailure struct {
		BatchItemRef
		Error string `json:"error"`
	}

	// BatchIngestResult reports every record's outcome. Failures are collected,
	// never thrown: one bad record does not abort the records after it.
	BatchIngestResult struct {
		Succeeded []string           `json:"succeeded"` // menu ids, in input order
		Skipped   []BatchItemRef     `json:"skipped"`
		Failed    []BatchItemFailure `json:"failed"`
	}
)
