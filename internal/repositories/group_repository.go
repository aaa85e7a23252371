package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"townhubBack/internal/models"
)

type GroupRepository struct {
	DB *sql.DB
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	query := `INSERT INTO groups (owner_id, name, description, created_at) VALUES (?, ?, ?, ?)`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, group.OwnerID, group.Name, group.Description, now)
	if err != nil {
		return models.Group{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.Group{}, err
	}
	group.ID = int(insertedID)
	group.CreatedAt = now

	// The owner is a member from the start.
	if _, err := r.DB.ExecContext(ctx, `INSERT INTO group_members (group_id, user_id, role, created_at) VALUES (?, ?, 'owner', ?)`, group.ID, group.OwnerID, now); err != nil {
		return models.Group{}, err
	}
	return group, nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id int) (models.Group, error) {
	var group models.Group
	query := `SELECT id, owner_id, name, description, created_at, updated_at FROM groups WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&group.ID, &group.OwnerID, &group.Name, &group.Description, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Group{}, models.ErrGroupNotFound
		}
		return models.Group{}, err
	}
	return group, nil
}

func (r *GroupRepository) GetGroups(ctx context.Context, page, pageSize int) ([]models.Group, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `SELECT id, owner_id, name, description, created_at, updated_at FROM groups ORDER BY created_at DESC LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.OwnerID, &group.Name, &group.Description, &group.CreatedAt, &group.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func (r *GroupRepository) UpdateGroup(ctx context.Context, group models.Group) error {
	query := `UPDATE groups SET name = ?, description = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, group.Name, group.Description, group.ID)
	return err
}

func (r *GroupRepository) DeleteGroup(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID int) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM group_members WHERE group_id = ? AND user_id = ?`, groupID, userID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return models.ErrAlreadyMember
	}
	_, err := r.DB.ExecContext(ctx, `INSERT INTO group_members (group_id, user_id, role, created_at) VALUES (?, ?, 'member', ?)`, groupID, userID, time.Now())
	return err
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = ? AND user_id = ? AND role <> 'owner'`, groupID, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNotMember
	}
	return nil
}

func (r *GroupRepository) GetMembers(ctx context.Context, groupID int) ([]models.GroupMember, error) {
	query := `SELECT group_id, user_id, role, created_at FROM group_members WHERE group_id = ? ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.GroupMember{}
	for rows.Next() {
		var member models.GroupMember
		if err := rows.Scan(&member.GroupID, &member.UserID, &member.Role, &member.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
