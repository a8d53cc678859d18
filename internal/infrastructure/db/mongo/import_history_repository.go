package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
)

const (
	collectionImportHistory = "import_history"
	maxRecent               = 100
)

var _ ports.ImportHistoryRepository = (*ImportHistoryRepository)(nil)

type tenantResultDoc struct {
	TenantID string `bson:"tenant_id"`
	Name     string `bson:"name"`
	Imported int    `bson:"imported"`
	Skipped  int    `bson:"skipped"`
	Error    string `bson:"error,omitempty"`
}

type importReportDoc struct {
	ID            string            `bson:"_id"`
	RecipeCount   int               `bson:"recipe_count"`
	TotalImported int               `bson:"total_imported"`
	TotalSkipped  int               `bson:"total_skipped"`
	SkippedLog    []string          `bson:"skipped_log"`
	Tenants       []tenantResultDoc `bson:"tenants"`
	StartedAt     time.Time         `bson:"started_at"`
	FinishedAt    time.Time         `bson:"finished_at"`
}

// ImportHistoryRepository stores finished batch-import reports.
type ImportHistoryRepository struct {
	col *mongo.Collection
}

func NewImportHistoryRepository(db *mongo.Database) *ImportHistoryRepository {
	return &ImportHistoryRepository{col: db.Collection(collectionImportHistory)}
}

// Save inserts report, assigning it an id when it has none.
func (r *ImportHistoryRepository) Save(ctx context.Context, report *domain.ImportReport) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, toReportDoc(report)); err != nil {
		return fmt.Errorf("insert import report: %w", err)
	}
	return nil
}

// Recent returns up to limit reports, newest first.
func (r *ImportHistoryRepository) Recent(ctx context.Context, limit int) ([]domain.ImportReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > maxRecent {
		limit = maxRecent
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "finished_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find import reports: %w", err)
	}
	defer cur.Close(ctx)

	var docs []importReportDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode import reports: %w", err)
	}
	out := make([]domain.ImportReport, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// EnsureIndexes creates the index used by Recent.
func (r *ImportHistoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "finished_at", Value: -1}},
	})
	return err
}

func toReportDoc(r *domain.ImportReport) importReportDoc {
	doc := importReportDoc{
		ID:            r.ID,
		RecipeCount:   r.RecipeCount,
		TotalImported: r.TotalImported,
		TotalSkipped:  r.TotalSkipped,
		SkippedLog:    r.SkippedLog,
		Tenants:       make([]tenantResultDoc, len(r.Tenants)),
		StartedAt:     r.StartedAt.UTC(),
		FinishedAt:    r.FinishedAt.UTC(),
	}
	for i, t := range r.Tenants {
		doc.Tenants[i] = tenantResultDoc(t)
	}
	return doc
}

func (d importReportDoc) toDomain() domain.ImportReport {
	out := domain.ImportReport{
		ID:            d.ID,
		RecipeCount:   d.RecipeCount,
		TotalImported: d.TotalImported,
		TotalSkipped:  d.TotalSkipped,
		SkippedLog:    d.SkippedLog,
		Tenants:       make([]domain.TenantImportResult, len(d.Tenants)),
		StartedAt:     d.StartedAt,
		FinishedAt:    d.FinishedAt,
	}
	if out.SkippedLog == nil {
		out.SkippedLog = []string{}
	}
	for i, t := range d.Tenants {
		out.Tenants[i] = domain.TenantImportResult(t)
	}
	return out
}
