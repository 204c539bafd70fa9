// Package api is a thin typed client for the taskboard REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// User mirrors the server's outward user representation.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Task mirrors the server's task representation.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// envelope is the server's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
}

type authData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Client talks to one taskboard server and keeps the bearer token obtained
// at registration or login.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// LoggedIn reports whether the client holds a token.
func (c *Client) LoggedIn() bool { return c.token != "" }

// Logout discards the stored token.
func (c *Client) Logout() { c.token = "" }

func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var data authData
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &data)
	if err != nil {
		return nil, err
	}
	c.token = data.Token
	return &data.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var data authData
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": email, "password": password}, &data)
	if err != nil {
		return nil, err
	}
	c.token = data.Token
	return &data.User, nil
}

func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) AddTask(ctx context.Context, title, description, priority string) (*Task, error) {
	body := map[string]string{"title": title}
	if description != "" {
		body["description"] = description
	}
	if priority != "" {
		body["priority"] = priority
	}

	var task Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) CompleteTask(ctx context.Context, id int64) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d", id),
		map[string]bool{"completed": true}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// do performs one API call and decodes the envelope's data into out. A
// response with success=false becomes an error carrying the server message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if !env.Success {
		msg := env.Error
		if len(env.Details) > 0 {
			msg = fmt.Sprintf("%s: %v", msg, env.Details)
		}
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return fmt.Errorf("server: %s", msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
	}

	return nil
}
