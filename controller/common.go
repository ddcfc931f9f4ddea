// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/exception"
)

const maxRequestBodySize = 10 * 1024 * 1024

func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("Failed to marshal response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, msg string, err error) {
	var customError *exception.CustomError
	if errors.As(err, &customError) {
		RespondWithCustomError(w, customError)
		return
	}
	log.Errorf("%s: %s", msg, err.Error())
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusInternalServerError,
		Message: msg,
		Debug:   err.Error(),
	})
}

func RespondWithCustomError(w http.ResponseWriter, err *exception.CustomError) {
	log.Debugf("Request failed. Code = %d. Message = %s. Params: %v. Debug: %s", err.Status, err.Message, err.Params, err.Debug)
	respondWithJson(w, err.Status, err)
}

func respondForbidden(w http.ResponseWriter) {
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusForbidden,
		Code:    exception.InsufficientPrivileges,
		Message: exception.InsufficientPrivilegesMsg,
	})
}

func getStringParam(r *http.Request, p string) string {
	return mux.Vars(r)[p]
}

func getUnescapedStringParam(r *http.Request, p string) (string, error) {
	return url.PathUnescape(mux.Vars(r)[p])
}

// getUnescapedParamOrRespond writes a 400 response and returns false when the
// path parameter cannot be unescaped.
func getUnescapedParamOrRespond(w http.ResponseWriter, r *http.Request, p string) (string, bool) {
	value, err := getUnescapedStringParam(r, p)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidURLEscape,
			Message: exception.InvalidURLEscapeMsg,
			Params:  map[string]interface{}{"param": p},
			Debug:   err.Error(),
		})
		return "", false
	}
	return value, true
}

func getIntQueryParam(r *http.Request, p string) (int, error) {
	value := r.URL.Query().Get(p)
	if value == "" {
		return 0, nil
	}
	res, err := strconv.Atoi(value)
	if err != nil {
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": p, "value": value},
			Debug:   err.Error(),
		}
	}
	return res, nil
}

// decodeBody reads a json request body into v and writes a 400 response on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err == nil {
		err = json.Unmarshal(body, v)
	}
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return false
	}
	return true
}
