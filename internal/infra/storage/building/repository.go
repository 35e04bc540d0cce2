package building

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/dbmetrics"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс executor'а из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var individualColumns = []string{
	"id",
	"account_id",
	"first_name",
	"last_name",
	"national_id",
	"country",
	"room_id",
	"is_staff",
	"admin_floor",
}

// Repository репозиторий справочных сущностей здания: этажи, комнаты, жильцы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория здания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetFloorByID получает этаж по ID
func (r *Repository) GetFloorByID(ctx context.Context, id int64) (*domain.Floor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "floor_number").
		From("floors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFloorByID - build select query: %v", ErrBuildQuery, err)
	}

	var floor domain.Floor
	err = executor.QueryRowContext(ctx, query, args...).Scan(&floor.ID, &floor.FloorNumber)
	if err == sql.ErrNoRows {
		return nil, ErrFloorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFloorByID - scan floor: %v", ErrScanRow, err)
	}

	return &floor, nil
}

// GetRoomByID получает комнату по ID
func (r *Repository) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "floor_id", "room_number", "max_occupants").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRoom(executor.QueryRowContext(ctx, query, args...))
}

// GetRoomByNumber получает комнату по номеру (номер уникален в пределах этажа,
// а этаж однозначно определяется префиксом номера, поэтому поиск глобальный)
func (r *Repository) GetRoomByNumber(ctx context.Context, roomNumber int) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "floor_id", "room_number", "max_occupants").
		From("rooms").
		Where(squirrel.Eq{"room_number": roomNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByNumber - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRoom(executor.QueryRowContext(ctx, query, args...))
}

// GetIndividualByID получает жильца по ID
func (r *Repository) GetIndividualByID(ctx context.Context, id int64) (*domain.Individual, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(individualColumns...).
		From("individuals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIndividualByID - build select query: %v", ErrBuildQuery, err)
	}

	var ind domain.Individual
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ind.ID,
		&ind.AccountID,
		&ind.FirstName,
		&ind.LastName,
		&ind.NationalID,
		&ind.Country,
		&ind.RoomID,
		&ind.IsStaff,
		&ind.AdminFloor,
	)
	if err == sql.ErrNoRows {
		return nil, ErrIndividualNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetIndividualByID - scan individual: %v", ErrScanRow, err)
	}

	return &ind, nil
}

// GetIndividualsByRoom получает жильцов комнаты
func (r *Repository) GetIndividualsByRoom(ctx context.Context, roomID int64) ([]*domain.Individual, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(individualColumns...).
		From("individuals").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIndividualsByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIndividualsByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	individuals := make([]*domain.Individual, 0)
	for rows.Next() {
		var ind domain.Individual
		err := rows.Scan(
			&ind.ID,
			&ind.AccountID,
			&ind.FirstName,
			&ind.LastName,
			&ind.NationalID,
			&ind.Country,
			&ind.RoomID,
			&ind.IsStaff,
			&ind.AdminFloor,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetIndividualsByRoom - scan row: %v", ErrScanRow, err)
		}
		individuals = append(individuals, &ind)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetIndividualsByRoom - rows error: %v", ErrScanRow, err)
	}

	return individuals, nil
}

// CountRoomOccupants возвращает текущее количество жильцов комнаты
func (r *Repository) CountRoomOccupants(ctx context.Context, roomID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("individuals").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountRoomOccupants - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountRoomOccupants - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// SetIndividualRoom назначает жильца в комнату (roomID == nil - выселение)
func (r *Repository) SetIndividualRoom(ctx context.Context, individualID int64, roomID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("individuals").
		Set("room_id", roomID).
		Where(squirrel.Eq{"id": individualID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetIndividualRoom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetIndividualRoom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetIndividualRoom - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrIndividualNotFound
	}

	return nil
}

// RoomNumbersByFloor возвращает отображение room_id -> room_number для этажа
// Используется при построении сетки занятости
func (r *Repository) RoomNumbersByFloor(ctx context.Context, floorID int64) (map[int64]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "room_number").
		From("rooms").
		Where(squirrel.Eq{"floor_id": floorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RoomNumbersByFloor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RoomNumbersByFloor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	numbers := make(map[int64]int)
	for rows.Next() {
		var id int64
		var number int
		if err := rows.Scan(&id, &number); err != nil {
			return nil, fmt.Errorf("%w: RoomNumbersByFloor - scan row: %v", ErrScanRow, err)
		}
		numbers[id] = number
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RoomNumbersByFloor - rows error: %v", ErrScanRow, err)
	}

	return numbers, nil
}

// FloorSummary агрегированная статистика этажа для административного обзора
type FloorSummary struct {
	FloorNumber      int
	TotalRooms       int
	OccupiedRooms    int
	TotalIndividuals int
}

// GetFloorSummary возвращает статистику этажа: количество комнат, занятых
// комнат и жильцов
func (r *Repository) GetFloorSummary(ctx context.Context, floorID int64) (*FloorSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	floor, err := r.GetFloorByID(ctx, floorID)
	if err != nil {
		return nil, err
	}

	summary := &FloorSummary{FloorNumber: floor.FloorNumber}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		Where(squirrel.Eq{"floor_id": floorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFloorSummary - build rooms query: %v", ErrBuildQuery, err)
	}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&summary.TotalRooms); err != nil {
		return nil, fmt.Errorf("%w: GetFloorSummary - scan rooms count: %v", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select("COUNT(DISTINCT i.room_id)").
		From("individuals i").
		Join("rooms r ON r.id = i.room_id").
		Where(squirrel.Eq{"r.floor_id": floorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFloorSummary - build occupied query: %v", ErrBuildQuery, err)
	}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&summary.OccupiedRooms); err != nil {
		return nil, fmt.Errorf("%w: GetFloorSummary - scan occupied count: %v", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select("COUNT(*)").
		From("individuals i").
		Join("rooms r ON r.id = i.room_id").
		Where(squirrel.Eq{"r.floor_id": floorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFloorSummary - build individuals query: %v", ErrBuildQuery, err)
	}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&summary.TotalIndividuals); err != nil {
		return nil, fmt.Errorf("%w: GetFloorSummary - scan individuals count: %v", ErrScanRow, err)
	}

	return summary, nil
}

func (r *Repository) scanRoom(row *sql.Row) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(&room.ID, &room.FloorID, &room.RoomNumber, &room.MaxOccupants)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanRoom - scan room: %v", ErrScanRow, err)
	}
	return &room, nil
}
