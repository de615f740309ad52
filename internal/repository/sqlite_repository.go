package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"bestie-chat/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateConversation(ctx context.Context, conversation *model.Conversation) error {
	if conversation.Title == "" {
		conversation.Title = model.DefaultConversationTitle
	}
	conversation.CreatedAt = time.Now().UTC()

	personality, err := marshalPersonality(conversation.PersonalityConfig)
	if err != nil {
		return fmt.Errorf("could not encode personality config: %w", err)
	}

	query := "INSERT INTO conversations (title, personality_config, user_id, created_at) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, query, conversation.Title, personality, conversation.UserID, conversation.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert conversation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read conversation id: %w", err)
	}
	conversation.ID = id
	return nil
}

func (r *sqliteRepository) GetConversation(ctx context.Context, id int64) (*model.Conversation, error) {
	query := "SELECT id, title, personality_config, user_id, created_at FROM conversations WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, id)

	var conversation model.Conversation
	var personality sql.NullString
	var userID sql.NullString
	err := row.Scan(&conversation.ID, &conversation.Title, &personality, &userID, &conversation.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if userID.Valid {
		conversation.UserID = &userID.String
	}
	if personality.Valid {
		var cfg model.PersonalityConfig
		if err := json.Unmarshal([]byte(personality.String), &cfg); err != nil {
			return nil, fmt.Errorf("could not decode personality config: %w", err)
		}
		conversation.PersonalityConfig = &cfg
	}
	return &conversation, nil
}

func (r *sqliteRepository) UpdateConversationTitle(ctx context.Context, id int64, title string) error {
	query := "UPDATE conversations SET title = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, title, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) CreateMessage(ctx context.Context, message *model.Message) error {
	message.CreatedAt = time.Now().UTC()

	query := "INSERT INTO messages (conversation_id, role, content, created_at) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, query, message.ConversationID, message.Role, message.Content, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read message id: %w", err)
	}
	message.ID = id
	return nil
}

func (r *sqliteRepository) GetMessagesByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	query := `
		SELECT id, conversation_id, role, content, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func marshalPersonality(cfg *model.PersonalityConfig) (sql.NullString, error) {
	if cfg == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
