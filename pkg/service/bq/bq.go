package bq

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	bigquery "google.golang.org/api/bigquery/v2"
	"google.golang.org/api/option"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
)

// Sink implements interfaces.MetadataSink using the BigQuery streaming
// insert API (tabledata.insertAll).
type Sink struct {
	svc       *bigquery.Service
	projectID string
	dataset   string
	table     string
}

// New creates a new BigQuery metadata sink
func New(ctx context.Context, projectID, dataset, table string, opts ...option.ClientOption) (*Sink, error) {
	if projectID == "" || dataset == "" || table == "" {
		return nil, goerr.New("project, dataset and table are required",
			goerr.V("project_id", projectID),
			goerr.V("dataset", dataset),
			goerr.V("table", table),
		)
	}

	svc, err := bigquery.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client")
	}

	return &Sink{
		svc:       svc,
		projectID: projectID,
		dataset:   dataset,
		table:     table,
	}, nil
}

// Insert appends one document row. Per-row insert errors reported by the API
// are returned as an error; the insertId makes retries idempotent.
func (s *Sink) Insert(ctx context.Context, doc *model.Document) error {
	row := map[string]bigquery.JsonValue{}
	for k, v := range doc.Row() {
		row[k] = v
	}

	req := &bigquery.TableDataInsertAllRequest{
		Rows: []*bigquery.TableDataInsertAllRequestRows{
			{
				InsertId: doc.ID.String(),
				Json:     row,
			},
		},
	}

	resp, err := s.svc.Tabledata.InsertAll(s.projectID, s.dataset, s.table, req).Context(ctx).Do()
	if err != nil {
		return goerr.Wrap(err, "failed to insert metadata row",
			goerr.V("document_id", doc.ID),
		)
	}

	if len(resp.InsertErrors) > 0 {
		var messages []string
		for _, ie := range resp.InsertErrors {
			for _, e := range ie.Errors {
				messages = append(messages, e.Message)
			}
		}
		return goerr.New("BigQuery rejected metadata row",
			goerr.V("document_id", doc.ID),
			goerr.V("errors", messages),
		)
	}

	return nil
}
