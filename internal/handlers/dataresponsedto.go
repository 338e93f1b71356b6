package handlers

import (
	"Listline/utils"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type DataResponseDto[T any] struct {
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Size       int `json:"size"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

func NewDataResponseDto[T any](data T) DataResponseDto[T] {
	return DataResponseDto[T]{
		Data: data,
	}
}

func NewPagedDataResponseDto[T any](items []T, queryOps *QueryOps, totalItems int) DataResponseDto[[]T] {
	var pagination *Pagination
	if queryOps.PageSize > 0 {
		pagination = &Pagination{
			Size:       queryOps.PageSize,
			Page:       queryOps.Page,
			TotalPages: (totalItems + queryOps.PageSize - 1) / queryOps.PageSize,
			TotalItems: totalItems,
		}
	}

	return DataResponseDto[[]T]{
		Data:       utils.EmptyIfNil(items),
		Pagination: pagination,
	}
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		utils.HandleHttpError(w, err)
	}
}

func decodeJson(r *http.Request, target any) error {
	err := json.NewDecoder(r.Body).Decode(target)
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		return fmt.Errorf("request body exceeds %d bytes: %w", maxBytesError.Limit, utils.ErrHttpPayloadTooLarge)
	}
	if err != nil {
		return fmt.Errorf("decoding request body: %s: %w", err.Error(), utils.ErrHttpBadRequest)
	}
	return nil
}
