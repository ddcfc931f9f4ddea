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

package audit

import (
	"fmt"
	"strings"
)

const wellFormedTitle = "Acme Bakery | Fresh Sourdough Bread and Pastries Daily!"

const wellFormedDescription = "Acme Bakery bakes fresh sourdough bread, croissants and seasonal pastries every morning in the heart of Springfield. Order online or visit our shop on Elm."

func bodyCopy(words int) string {
	return strings.TrimSpace(strings.Repeat("bread ", words))
}

// wellFormedPage passes every quick-scope rule that can be observed from markup.
func wellFormedPage() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<title>%s</title>
<meta name="description" content="%s">
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
<h1>Fresh bread every morning</h1>
<p>%s</p>
</body>
</html>`, wellFormedTitle, wellFormedDescription, bodyCopy(350))
}
