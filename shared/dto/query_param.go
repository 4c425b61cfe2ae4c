package dto

import (
	"net/http"
	"strconv"

	"innflow/shared/constant"
	"innflow/shared/failure"
)

// QueryParams carries optional page/limit pagination. Zero values mean "everything".
type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// FromRequest reads page and limit from the query string. Missing values stay zero,
// malformed or non-positive values are rejected.
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt <= 0 {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			return failure.InvalidLimitParam
		}

		q.Limit = limitInt
	}

	if q.Page > 0 && q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.Limit > 0 && q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	return nil
}

// Paginated reports whether a page was requested.
func (q QueryParams) Paginated() bool {
	return q.Page > 0 && q.Limit > 0
}

type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}
