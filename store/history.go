package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/graeme-hill/calcstuff-go/lib"
)

// Evaluation is one run of an expression through the calculator. Err is
// empty when the run succeeded, and Result is only meaningful then.
type Evaluation struct {
	ID         int64
	Expression string
	Postfix    string
	Result     int64
	Err        string
	At         time.Time
}

func (e Evaluation) Failed() bool {
	return e.Err != ""
}

// Evaluate runs expr through the calculator and describes the outcome. Postfix
// is filled in whenever conversion got that far.
func Evaluate(expr string) Evaluation {
	eval := Evaluation{Expression: expr}

	tokens, err := lib.Tokenize(expr)
	if err == nil {
		postfix, convErr := lib.ToPostfix(tokens)
		if convErr == nil {
			eval.Postfix = lib.FormatRPN(postfix)
		}
	}

	result, err := lib.Calculate(expr)
	if err != nil {
		eval.Err = err.Error()
		return eval
	}
	eval.Result = result
	return eval
}

type Client struct {
	db *sql.DB
}

func NewDBClient(connectionString string) (*Client, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

// Record stores eval and returns it with ID and At set by the database.
func (c *Client) Record(ctx context.Context, eval Evaluation) (Evaluation, error) {
	var result sql.NullInt64
	if !eval.Failed() {
		result = sql.NullInt64{Int64: eval.Result, Valid: true}
	}

	row := c.db.QueryRowContext(ctx,
		"INSERT INTO evaluations (expression, postfix, result, error) VALUES ($1, $2, $3, $4) RETURNING id, at",
		eval.Expression, eval.Postfix, result, eval.Err)
	if err := row.Scan(&eval.ID, &eval.At); err != nil {
		return Evaluation{}, err
	}
	return eval, nil
}

// Recent returns up to limit evaluations, newest first.
func (c *Client) Recent(ctx context.Context, limit int) ([]Evaluation, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT id, expression, postfix, result, error, at FROM evaluations ORDER BY id DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evals := []Evaluation{}
	for rows.Next() {
		var eval Evaluation
		var result sql.NullInt64
		err := rows.Scan(&eval.ID, &eval.Expression, &eval.Postfix, &result, &eval.Err, &eval.At)
		if err != nil {
			return nil, err
		}
		eval.Result = result.Int64
		evals = append(evals, eval)
	}
	return evals, rows.Err()
}
