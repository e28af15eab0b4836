package utils

import (
	"net/http"
	"serenia-service/internal/pkg/constvars"
	"strconv"
)

func ParsePagination(r *http.Request) (page, pageSize int) {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
