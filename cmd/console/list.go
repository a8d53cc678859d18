package main

import (
	"github.com/spf13/cobra"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// listFlags are the paging, search and sort flags of list commands.
type listFlags struct {
	page     int
	pageSize int
	search   string
	sort     string
}

func (f *listFlags) register(cmd *cobra.Command, sortFields string) {
	cmd.Flags().IntVar(&f.page, "page", domain.DefaultPage, "page number, starting at 1")
	cmd.Flags().IntVar(&f.pageSize, "page-size", domain.DefaultPageSize, "rows per page")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "case-insensitive search text")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort as field:asc or field:desc, fields: "+sortFields)
}

func (f *listFlags) query() (domain.ListQuery, error) {
	sort, err := domain.ParseSort(f.sort)
	if err != nil {
		return domain.ListQuery{}, err
	}
	return domain.ListQuery{
		Page:     f.page,
		PageSize: f.pageSize,
		Search:   f.search,
		Sort:     sort,
	}.Normalize(), nil
}
