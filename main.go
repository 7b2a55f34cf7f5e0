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

// File: main.go
// Package: main
//
// Description:
// Entry point for the `gstoolbox` CLI. Loads an optional .env file so
// that local runs can supply GOOGLE_APPLICATION_CREDENTIALS without
// exporting it, then hands control to the cmd package.

package main

import (
	"github.com/joho/godotenv"

	"github.com/storageqa/gstoolbox/cmd"
)

func main() {
	// Missing .env is fine; the environment may already be configured.
	_ = godotenv.Load()

	cmd.Execute()
}
