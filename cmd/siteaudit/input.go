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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

// pageNames returns the inputs to evaluate; no arguments means stdin.
func pageNames(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func readPage(name string, stdin io.Reader) (string, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// evaluatePages runs eval for every page in parallel. Results keep the order of names.
func evaluatePages[T any](ctx context.Context, names []string, stdin io.Reader, eval func(html string) (T, error)) ([]T, error) {
	results := make([]T, len(names))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			html, err := readPage(name, stdin)
			if err != nil {
				return err
			}
			res, err := eval(html)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
