package character

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character/migrations"
	"github.com/KirkDiggler/rpg-sheet/internal/sqlite"
)

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite character repository.
// DB must already have migrations.FS applied; OpenSQLite does both.
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a SQLite-backed character repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: cfg.DB, clock: c}, nil
}

// OpenSQLite opens the database at path, applies the character schema and
// returns a repository over it. The caller owns the returned DB.
func OpenSQLite(ctx context.Context, path string, c clock.Clock) (Repository, *sql.DB, error) {
	db, err := sqlite.Open(ctx, path, migrations.FS)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open character store")
	}

	repo, err := NewSQLite(&SQLiteConfig{DB: db, Clock: c})
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return repo, db, nil
}

var _ Repository = (*sqliteRepository)(nil)

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	char := input.Character

	now := r.clock.Now().Unix()
	if char.CreatedAt == 0 {
		char.CreatedAt = now
	}
	char.UpdatedAt = now

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO characters (id, player_id, campaign_id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		char.ID, char.PlayerID, char.CampaignID, string(data), char.CreatedAt, char.UpdatedAt,
	)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("character with ID %s already exists", char.ID)
		}
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: char}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	row := r.db.QueryRowContext(ctx, `SELECT data FROM characters WHERE id = ?`, input.ID)
	char, err := scanCharacter(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	return &GetOutput{Character: char}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	char := input.Character

	existing, err := r.Get(ctx, GetInput{ID: char.ID})
	if err != nil {
		return nil, err
	}
	char.CreatedAt = existing.Character.CreatedAt
	char.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE characters
		SET player_id = ?, campaign_id = ?, data = ?, updated_at = ?
		WHERE id = ?`,
		char.PlayerID, char.CampaignID, string(data), char.UpdatedAt, char.ID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", char.ID)
	}

	return &UpdateOutput{Character: char}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	characters, err := r.list(ctx, `SELECT data FROM characters WHERE player_id = ? ORDER BY created_at, id`, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &ListByPlayerIDOutput{Characters: characters}, nil
}

func (r *sqliteRepository) ListByCampaignID(
	ctx context.Context,
	input ListByCampaignIDInput,
) (*ListByCampaignIDOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	characters, err := r.list(ctx, `SELECT data FROM characters WHERE campaign_id = ? ORDER BY created_at, id`, input.CampaignID)
	if err != nil {
		return nil, err
	}
	return &ListByCampaignIDOutput{Characters: characters}, nil
}

func (r *sqliteRepository) list(ctx context.Context, query string, arg string) ([]*dnd5e.Character, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := make([]*dnd5e.Character, 0)
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read character")
		}
		characters = append(characters, char)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	return characters, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (*dnd5e.Character, error) {
	var data string
	if err := row.Scan(&data); err != nil {
		return nil, err
	}
	var char dnd5e.Character
	if err := json.Unmarshal([]byte(data), &char); err != nil {
		return nil, err
	}
	return &char, nil
}
