package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

const defaultPoolSize = 10

// Postgres error codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// stockNumberIndex is the unique index guarding vehicles.stock_number.
const stockNumberIndex = "idx_vehicles_stock_number_unique"

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A non-positive poolSize uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := RunMigrations(ctx, s.pool)
	return err
}

// ApplyMigrations applies pending migrations and reports which ran.
func (s *PostgresStore) ApplyMigrations(ctx context.Context) ([]string, error) {
	return RunMigrations(ctx, s.pool)
}

// CreateDealership inserts a dealership and fills in its ID and CreatedAt.
func (s *PostgresStore) CreateDealership(ctx context.Context, d *domain.Dealership) error {
	args := pgx.NamedArgs{
		"name":        d.Name,
		"location":    d.Location,
		"province":    d.Province,
		"address":     d.Address,
		"postal_code": d.PostalCode,
		"phone":       d.Phone,
	}

	if err := s.pool.QueryRow(ctx, queryCreateDealership, args).Scan(&d.ID, &d.CreatedAt); err != nil {
		return fmt.Errorf("creating dealership: %w", err)
	}
	return nil
}

// GetDealership retrieves a dealership by ID.
func (s *PostgresStore) GetDealership(ctx context.Context, id string) (*domain.Dealership, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	d := &domain.Dealership{}
	if err := scanDealership(s.pool.QueryRow(ctx, queryGetDealership, id), d); err != nil {
		return nil, notFound(err, "getting dealership")
	}
	return d, nil
}

// ListDealerships returns every dealership ordered by name.
func (s *PostgresStore) ListDealerships(ctx context.Context) ([]domain.Dealership, error) {
	rows, err := s.pool.Query(ctx, queryListDealerships)
	if err != nil {
		return nil, fmt.Errorf("querying dealerships: %w", err)
	}
	defer rows.Close()

	dealerships := []domain.Dealership{}
	for rows.Next() {
		var d domain.Dealership
		if err := scanDealership(rows, &d); err != nil {
			return nil, fmt.Errorf("scanning dealership: %w", err)
		}
		dealerships = append(dealerships, d)
	}
	return dealerships, rows.Err()
}

// UpdateDealership overwrites a dealership's fields.
func (s *PostgresStore) UpdateDealership(ctx context.Context, d *domain.Dealership) error {
	if !validID(d.ID) {
		return ErrNotFound
	}
	args := pgx.NamedArgs{
		"id":          d.ID,
		"name":        d.Name,
		"location":    d.Location,
		"province":    d.Province,
		"address":     d.Address,
		"postal_code": d.PostalCode,
		"phone":       d.Phone,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateDealership, args)
	if err != nil {
		return fmt.Errorf("updating dealership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDealership removes a dealership and, by cascade, its vehicles.
func (s *PostgresStore) DeleteDealership(ctx context.Context, id string) error {
	return s.deleteByID(ctx, queryDeleteDealership, id, "deleting dealership")
}

// DealershipNames resolves dealership IDs to names. Unknown IDs are absent
// from the result.
func (s *PostgresStore) DealershipNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := s.pool.Query(ctx, queryDealershipNames, ids)
	if err != nil {
		return nil, fmt.Errorf("querying dealership names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning dealership name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}

// CreateVehicle inserts a vehicle and fills in its ID and CreatedAt.
func (s *PostgresStore) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if !validID(v.DealershipID) {
		return fmt.Errorf("%s: %w", v.DealershipID, ErrDealershipNotFound)
	}
	if v.Status == "" {
		v.Status = domain.StatusAvailable
	}

	err := s.pool.QueryRow(ctx, queryCreateVehicle, vehicleArgs(v)).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return writeErr(err, v, "creating vehicle")
	}
	return nil
}

// GetVehicle retrieves a vehicle by ID.
func (s *PostgresStore) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return s.getVehicle(ctx, queryGetVehicle, id)
}

// GetVehicleByVIN retrieves a vehicle by VIN, case-insensitively.
func (s *PostgresStore) GetVehicleByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	return s.getVehicle(ctx, queryGetVehicleByVIN, vin)
}

// GetVehicleByStockNumber retrieves the newest vehicle with a stock number.
func (s *PostgresStore) GetVehicleByStockNumber(ctx context.Context, stockNumber string) (*domain.Vehicle, error) {
	return s.getVehicle(ctx, queryGetVehicleByStockNumber, stockNumber)
}

// ListVehicles queries vehicles with optional filters, returning results and total count.
func (s *PostgresStore) ListVehicles(ctx context.Context, q *VehicleQuery) ([]domain.Vehicle, int, error) {
	if q.DealershipID != nil && !validID(*q.DealershipID) {
		return []domain.Vehicle{}, 0, nil
	}

	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting vehicles: %w", err)
	}

	vehicles, err := s.queryVehicles(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// UpdateVehicle overwrites a vehicle's fields.
func (s *PostgresStore) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if !validID(v.ID) {
		return ErrNotFound
	}
	if !validID(v.DealershipID) {
		return fmt.Errorf("%s: %w", v.DealershipID, ErrDealershipNotFound)
	}

	args := vehicleArgs(v)
	args["id"] = v.ID

	tag, err := s.pool.Exec(ctx, queryUpdateVehicle, args)
	if err != nil {
		return writeErr(err, v, "updating vehicle")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVehicle removes a vehicle by ID.
func (s *PostgresStore) DeleteVehicle(ctx context.Context, id string) error {
	return s.deleteByID(ctx, queryDeleteVehicle, id, "deleting vehicle")
}

// ListComparables returns every vehicle of a make and model, any status.
func (s *PostgresStore) ListComparables(ctx context.Context, vehicleMake, model string) ([]domain.Vehicle, error) {
	return s.queryVehicles(ctx, queryListComparables, vehicleMake, model)
}

// ListInventory returns every vehicle.
func (s *PostgresStore) ListInventory(ctx context.Context) ([]domain.Vehicle, error) {
	return s.queryVehicles(ctx, queryListInventory)
}

func (s *PostgresStore) getVehicle(ctx context.Context, query string, arg string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	if err := scanVehicle(s.pool.QueryRow(ctx, query, arg), v); err != nil {
		return nil, notFound(err, "getting vehicle")
	}
	return v, nil
}

func (s *PostgresStore) queryVehicles(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		var v domain.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *PostgresStore) deleteByID(ctx context.Context, query, id, op string) error {
	if !validID(id) {
		return ErrNotFound
	}
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func vehicleArgs(v *domain.Vehicle) pgx.NamedArgs {
	features := v.Features
	if features == nil {
		features = []string{}
	}
	return pgx.NamedArgs{
		"dealership_id":       v.DealershipID,
		"vin":                 v.VIN,
		"stock_number":        v.StockNumber,
		"condition":           v.Condition,
		"make":                v.Make,
		"model":               v.Model,
		"trim":                v.Trim,
		"year":                v.Year,
		"color":               v.Color,
		"price":               v.Price,
		"kilometers":          v.Kilometers,
		"transmission":        string(v.Transmission),
		"fuel_type":           string(v.FuelType),
		"body_type":           string(v.BodyType),
		"drivetrain":          string(v.Drivetrain),
		"engine_cylinders":    v.EngineCylinders,
		"engine_displacement": v.EngineDisplacement,
		"features":            features,
		"listing_link":        v.ListingLink,
		"carfax_link":         v.CarfaxLink,
		"carfax_status":       v.CarfaxStatus,
		"notes":               v.Notes,
		"status":              string(v.Status),
	}
}

func scanDealership(row pgx.Row, d *domain.Dealership) error {
	return row.Scan(
		&d.ID, &d.Name, &d.Location, &d.Province, &d.Address,
		&d.PostalCode, &d.Phone, &d.CreatedAt,
	)
}

func scanVehicle(row pgx.Row, v *domain.Vehicle) error {
	return row.Scan(
		&v.ID, &v.DealershipID, &v.VIN, &v.StockNumber, &v.Condition,
		&v.Make, &v.Model, &v.Trim, &v.Year, &v.Color, &v.Price, &v.Kilometers,
		&v.Transmission, &v.FuelType, &v.BodyType, &v.Drivetrain,
		&v.EngineCylinders, &v.EngineDisplacement, &v.Features,
		&v.ListingLink, &v.CarfaxLink, &v.CarfaxStatus, &v.Notes, &v.Status, &v.CreatedAt,
	)
}

func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func notFound(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func writeErr(err error, v *domain.Vehicle, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == stockNumberIndex {
				return fmt.Errorf("stock number %s: %w", v.StockNumber, ErrConflict)
			}
			return fmt.Errorf("vin %s: %w", v.VIN, ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", v.DealershipID, ErrDealershipNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
