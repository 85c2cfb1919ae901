package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"sqlpractice/internal/logging"
	"sqlpractice/internal/models"
	"sqlpractice/internal/repositories"
)

var (
	ErrEmptyQuery         = errors.New("query cannot be empty")
	ErrNotSelect          = errors.New("only SELECT queries are allowed")
	ErrMultipleStatements = errors.New("multiple statements are not allowed")
	ErrQueryTimeout       = errors.New("query took too long and was cancelled")
)

// QueryError carries the database engine's error for a query that passed
// validation but failed to run. Error returns the engine text unchanged.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string { return e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

type ExecuteQueryRequest struct {
	Query string `json:"query" form:"sql"`
}

type QueryService struct {
	queryRepo *repositories.QueryRepository
	mu        *sync.RWMutex
	timeout   time.Duration
	maxRows   int
}

func NewQueryService(queryRepo *repositories.QueryRepository, mu *sync.RWMutex, timeout time.Duration, maxRows int) *QueryService {
	return &QueryService{
		queryRepo: queryRepo,
		mu:        mu,
		timeout:   timeout,
		maxRows:   maxRows,
	}
}

// ValidateSQLQuery checks that query is a single SELECT statement and
// returns it without surrounding whitespace or trailing semicolons.
func ValidateSQLQuery(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	statements := splitStatements(query)
	switch len(statements) {
	case 0:
		// Only comments and semicolons.
		return "", ErrEmptyQuery
	case 1:
	default:
		return "", ErrMultipleStatements
	}

	normalized := statements[0]
	if !strings.EqualFold(firstKeyword(normalized), "select") {
		return "", ErrNotSelect
	}
	return normalized, nil
}

// ExecuteQuery validates and runs req.Query against the practice database.
// Validation failures return one of the sentinel errors and no result. When
// the engine rejects the query the result is returned with Error set,
// together with a *QueryError.
func (s *QueryService) ExecuteQuery(ctx context.Context, req *ExecuteQueryRequest) (*models.QueryResult, error) {
	startTime := time.Now()
	log := logging.WithComponent("query")

	query, err := ValidateSQLQuery(req.Query)
	if err != nil {
		log.Debug("query rejected", "error", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.mu.RLock()
	rows, err := s.queryRepo.Select(ctx, query, s.maxRows)
	s.mu.RUnlock()

	result := &models.QueryResult{Query: query}
	result.ExecutionTime = time.Since(startTime).Milliseconds()

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w (limit %s)", ErrQueryTimeout, s.timeout)
		}
		result.Error = err.Error()
		result.Prepare()
		log.Info("query failed", "execution_id", result.ExecutionID, "error", err)
		return result, &QueryError{Query: query, Err: err}
	}

	result.Columns = rows.Columns
	result.Rows = rows.Rows
	result.Truncated = rows.Truncated
	result.Prepare()

	log.Info("query executed",
		"execution_id", result.ExecutionID,
		"rows", result.RowCount,
		"truncated", result.Truncated,
		"execution_time_ms", result.ExecutionTime,
	)
	return result, nil
}

// splitStatements splits query on semicolons that are not inside string
// literals, quoted identifiers or comments. Statements consisting only of
// whitespace and comments are dropped; the rest are trimmed.
func splitStatements(query string) []string {
	var (
		statements []string
		start      int
		hasCode    bool
	)

	flush := func(end int) {
		if hasCode {
			statements = append(statements, strings.TrimSpace(query[start:end]))
		}
		start = end + 1
		hasCode = false
	}

	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '-' && i+1 < len(query) && query[i+1] == '-':
			for i < len(query) && query[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(query) && query[i+1] == '*':
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				i = len(query)
			} else {
				i += end + 3
			}
		case c == '\'' || c == '"' || c == '`' || c == '[':
			hasCode = true
			closer := c
			if c == '[' {
				closer = ']'
			}
			i = skipQuoted(query, i+1, closer)
		case c == ';':
			flush(i)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
		default:
			hasCode = true
		}
	}
	flush(len(query))

	return statements
}

// skipQuoted returns the index of the closing quote starting the scan at i.
// A doubled quote character is an escaped quote. Unterminated literals run to
// the end of the input and are left for the engine to report.
func skipQuoted(s string, i int, closer byte) int {
	for i < len(s) {
		if s[i] == closer {
			if closer != ']' && i+1 < len(s) && s[i+1] == closer {
				i += 2
				continue
			}
			return i
		}
		i++
	}
	return len(s)
}

// firstKeyword returns the leading run of letters after any comments.
func firstKeyword(stmt string) string {
	s := stripLeadingComments(stmt)
	end := 0
	for end < len(s) && isLetter(s[end]) {
		end++
	}
	return s[:end]
}

func stripLeadingComments(s string) string {
	for {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasPrefix(s, "--"):
			nl := strings.IndexByte(s, '\n')
			if nl < 0 {
				return ""
			}
			s = s[nl+1:]
		case strings.HasPrefix(s, "/*"):
			end := strings.Index(s[2:], "*/")
			if end < 0 {
				return ""
			}
			s = s[end+4:]
		default:
			return s
		}
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
