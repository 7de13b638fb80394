package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/dbx"
	"github.com/vkarpovs/filevault/internal/server/migrations"
	"github.com/vkarpovs/filevault/internal/server/models"
)

const pgUniqueViolation = "23505"

// PostgresStore persists the registry in Postgres via the pgx stdlib
// driver. Update wraps the unit of work in a transaction so an operation
// either commits completely or not at all.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromDB wraps an existing connection, used in tests.
func NewPostgresStoreFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, s.db, ".")
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) AllocateFileID(ctx context.Context) (uint64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE file_counter SET next_id = next_id + 1 WHERE id = 0 RETURNING next_id - 1`,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate file id: %w", err)
	}
	return uint64(id), nil
}

func (s *PostgresStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, pgTx{db: tx})
	})
}

func (s *PostgresStore) View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return fn(ctx, pgTx{db: s.db})
}

type pgTx struct{ db dbx.DBTX }

func (t pgTx) Files() FileRepository   { return &pgFiles{db: t.db} }
func (t pgTx) Chunks() ChunkRepository { return &pgChunks{db: t.db} }
func (t pgTx) Owners() OwnerRepository { return &pgOwners{db: t.db} }
func (t pgTx) Shares() ShareRepository { return &pgShares{db: t.db} }

// fileRow is the flattened relational form of models.File.
type fileRow struct {
	fileName        string
	requester       string
	requestedAt     int64
	uploadedAt      sql.NullInt64
	storageProvider string
	blobRef         string
	encrypted       bool
	state           string
	alias           string
	numChunks       int64
	fileType        string
	envelope        []byte
}

func flattenFile(file *models.File) (*fileRow, error) {
	row := &fileRow{
		fileName:        file.Metadata.FileName,
		requester:       string(file.Metadata.RequesterPrincipal),
		requestedAt:     int64(file.Metadata.RequestedAt),
		storageProvider: file.Metadata.StorageProvider,
		blobRef:         file.Metadata.BlobRef,
		encrypted:       file.Metadata.Encrypted,
	}
	if file.Metadata.UploadedAt != nil {
		row.uploadedAt = sql.NullInt64{Int64: int64(*file.Metadata.UploadedAt), Valid: true}
	}

	var env *models.Envelope
	switch c := file.Content.(type) {
	case models.ContentPending:
		row.state = models.StatusPending
		row.alias = c.Alias
	case models.ContentPartiallyUploaded:
		row.state = models.StatusPartiallyUploaded
		row.numChunks = int64(c.NumChunks)
		row.fileType = c.FileType
		env = c.Envelope
	case models.ContentUploaded:
		row.state = models.StatusUploaded
		row.numChunks = int64(c.NumChunks)
		row.fileType = c.FileType
		env = c.Envelope
	default:
		return nil, fmt.Errorf("unknown content state %T", file.Content)
	}

	if env != nil {
		b, err := json.Marshal(env)
		if err != nil {
			return nil, fmt.Errorf("failed to encode envelope: %w", err)
		}
		row.envelope = b
	}
	return row, nil
}

func (row *fileRow) toFile() (*models.File, error) {
	file := &models.File{
		Metadata: models.FileMetadata{
			FileName:           row.fileName,
			RequesterPrincipal: models.Principal(row.requester),
			RequestedAt:        uint64(row.requestedAt),
			StorageProvider:    row.storageProvider,
			BlobRef:            row.blobRef,
			Encrypted:          row.encrypted,
		},
	}
	if row.uploadedAt.Valid {
		at := uint64(row.uploadedAt.Int64)
		file.Metadata.UploadedAt = &at
	}

	var env *models.Envelope
	if len(row.envelope) > 0 {
		env = &models.Envelope{}
		if err := json.Unmarshal(row.envelope, env); err != nil {
			return nil, fmt.Errorf("failed to decode envelope: %w", err)
		}
	}

	switch row.state {
	case models.StatusPending:
		file.Content = models.ContentPending{Alias: row.alias}
	case models.StatusPartiallyUploaded:
		file.Content = models.ContentPartiallyUploaded{
			NumChunks: uint64(row.numChunks),
			FileType:  row.fileType,
			Envelope:  env,
		}
	case models.StatusUploaded:
		if env == nil {
			return nil, fmt.Errorf("%w: uploaded file without envelope", common.ErrInconsistentState)
		}
		file.Content = models.ContentUploaded{
			NumChunks: uint64(row.numChunks),
			FileType:  row.fileType,
			Envelope:  env,
		}
	default:
		return nil, fmt.Errorf("unknown content state %q", row.state)
	}
	return file, nil
}

type pgFiles struct{ db dbx.DBTX }

func (r *pgFiles) Get(ctx context.Context, id uint64) (*models.File, error) {
	query := `
		SELECT file_name, requester, requested_at, uploaded_at, storage_provider,
		       blob_ref, encrypted, state, alias, num_chunks, file_type, envelope
		FROM files WHERE id = $1
	`
	row := &fileRow{}
	err := r.db.QueryRowContext(ctx, query, int64(id)).Scan(
		&row.fileName, &row.requester, &row.requestedAt, &row.uploadedAt,
		&row.storageProvider, &row.blobRef, &row.encrypted, &row.state,
		&row.alias, &row.numChunks, &row.fileType, &row.envelope,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	return row.toFile()
}

func (r *pgFiles) Put(ctx context.Context, id uint64, file *models.File) error {
	row, err := flattenFile(file)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO files (id, file_name, requester, requested_at, uploaded_at, storage_provider,
		                   blob_ref, encrypted, state, alias, num_chunks, file_type, envelope)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id)
		DO UPDATE SET
			file_name = EXCLUDED.file_name,
			uploaded_at = EXCLUDED.uploaded_at,
			storage_provider = EXCLUDED.storage_provider,
			blob_ref = EXCLUDED.blob_ref,
			encrypted = EXCLUDED.encrypted,
			state = EXCLUDED.state,
			alias = EXCLUDED.alias,
			num_chunks = EXCLUDED.num_chunks,
			file_type = EXCLUDED.file_type,
			envelope = EXCLUDED.envelope;
	`
	_, err = r.db.ExecContext(ctx, query,
		int64(id), row.fileName, row.requester, row.requestedAt, row.uploadedAt,
		row.storageProvider, row.blobRef, row.encrypted, row.state, row.alias,
		row.numChunks, row.fileType, row.envelope,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert file: %w", err)
	}
	return nil
}

func (r *pgFiles) Delete(ctx context.Context, id uint64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, int64(id)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

type pgChunks struct{ db dbx.DBTX }

func (r *pgChunks) Put(ctx context.Context, fileID, chunkID uint64, contents []byte) error {
	query := `INSERT INTO file_chunks (file_id, chunk_id, contents) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, int64(fileID), int64(chunkID), contents)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrChunkExists
		}
		return fmt.Errorf("failed to insert chunk: %w", err)
	}
	return nil
}

func (r *pgChunks) Has(ctx context.Context, fileID, chunkID uint64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM file_chunks WHERE file_id = $1 AND chunk_id = $2)`,
		int64(fileID), int64(chunkID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check chunk: %w", err)
	}
	return exists, nil
}

func (r *pgChunks) Get(ctx context.Context, fileID, chunkID uint64) ([]byte, error) {
	var contents []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT contents FROM file_chunks WHERE file_id = $1 AND chunk_id = $2`,
		int64(fileID), int64(chunkID),
	).Scan(&contents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select chunk: %w", err)
	}
	return contents, nil
}

func (r *pgChunks) Count(ctx context.Context, fileID uint64) (uint64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM file_chunks WHERE file_id = $1`, int64(fileID),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return uint64(n), nil
}

func (r *pgChunks) Range(ctx context.Context, fileID uint64) ([]Chunk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT chunk_id, contents FROM file_chunks WHERE file_id = $1 ORDER BY chunk_id`,
		int64(fileID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to select chunks: %w", err)
	}
	defer rows.Close()

	var result []Chunk
	for rows.Next() {
		var chunk Chunk
		var id int64
		if err := rows.Scan(&id, &chunk.Contents); err != nil {
			return nil, err
		}
		chunk.ChunkID = uint64(id)
		result = append(result, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *pgChunks) DeleteAll(ctx context.Context, fileID uint64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM file_chunks WHERE file_id = $1`, int64(fileID)); err != nil {
		return fmt.Errorf("failed to delete chunks: %w", err)
	}
	return nil
}

type pgOwners struct{ db dbx.DBTX }

func (r *pgOwners) Add(ctx context.Context, p models.Principal, fileID uint64) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO owner_rosters (principal) VALUES ($1) ON CONFLICT DO NOTHING`, string(p),
	); err != nil {
		return fmt.Errorf("failed to record owner: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO file_owners (principal, file_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		string(p), int64(fileID),
	); err != nil {
		return fmt.Errorf("failed to add owned file: %w", err)
	}
	return nil
}

func (r *pgOwners) Remove(ctx context.Context, p models.Principal, fileID uint64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM file_owners WHERE principal = $1 AND file_id = $2`,
		string(p), int64(fileID),
	); err != nil {
		return fmt.Errorf("failed to remove owned file: %w", err)
	}
	return nil
}

func (r *pgOwners) List(ctx context.Context, p models.Principal) ([]uint64, bool, error) {
	var known bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM owner_rosters WHERE principal = $1)`, string(p),
	).Scan(&known)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check owner roster: %w", err)
	}
	if !known {
		return nil, false, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT file_id FROM file_owners WHERE principal = $1 ORDER BY seq`, string(p),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to select owned files: %w", err)
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, false, err
		}
		ids = append(ids, uint64(id))
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return ids, true, nil
}

type pgShares struct{ db dbx.DBTX }

func (r *pgShares) Add(ctx context.Context, p models.Principal, fileID uint64) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO file_shares (principal, file_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		string(p), int64(fileID),
	); err != nil {
		return fmt.Errorf("failed to add share: %w", err)
	}
	return nil
}

func (r *pgShares) Remove(ctx context.Context, p models.Principal, fileID uint64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM file_shares WHERE principal = $1 AND file_id = $2`,
		string(p), int64(fileID),
	); err != nil {
		return fmt.Errorf("failed to remove share: %w", err)
	}
	return nil
}

func (r *pgShares) List(ctx context.Context, p models.Principal) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT file_id FROM file_shares WHERE principal = $1 ORDER BY seq`, string(p),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", err)
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, uint64(id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *pgShares) RemoveFile(ctx context.Context, fileID uint64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM file_shares WHERE file_id = $1`, int64(fileID),
	); err != nil {
		return fmt.Errorf("failed to remove file shares: %w", err)
	}
	return nil
}
