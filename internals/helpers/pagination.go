package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

var (
	DefaultOpts = Options{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = Options{DefaultPerPage: 50, MaxPerPage: 500}
)

type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

// ParseFiber reads ?page= / ?per_page= (alias ?limit=) plus sort params
// from the request and normalizes them against the preset.
func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt Options) Params {
	q := c.Queries()

	page := atoiDefault(q["page"], DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(firstNonEmpty(q["per_page"], q["limit"]))
	per := opt.DefaultPerPage
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}
	if per < 1 {
		per = opt.DefaultPerPage
	}

	sortBy := strings.TrimSpace(q["sort_by"])
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(q["order"], q["sort"])))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return Params{Page: page, PerPage: per, SortBy: sortBy, SortOrder: order}
}

func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// SafeOrderClause builds an ORDER BY from a column whitelist so sort params
// never reach SQL verbatim.
func (p Params) SafeOrderClause(allowed map[string]string, defaultKey string) (string, error) {
	key := p.SortBy
	if key == "" {
		key = defaultKey
	}
	col, ok := allowed[key]
	if !ok {
		col, ok = allowed[defaultKey]
		if !ok {
			return "", fmt.Errorf("no valid default sort key")
		}
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return col + " " + dir, nil
}

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildMeta(total int64, p Params) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	return Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    totalPages > 0 && p.Page < totalPages,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
