/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "tagasalin",
	Short: "English to Tagalog LLM translator",
	Long: `A CLI application that translates English text into Tagalog (Filipino)
through an LLM chat-completions API, and measures translation quality
against a fixed battery of reference translations.

Use "tagasalin translate --help" for translation options and
"tagasalin evaluate --help" for the accuracy test runner.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig wires environment variables into viper. API keys are only ever
// read from the environment, never from flags, so they do not leak into
// shell history.
func initConfig() {
	viper.SetEnvPrefix("TAGASALIN")
	viper.AutomaticEnv()

	viper.BindEnv("openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("openrouter_api_key", "OPENROUTER_API_KEY")
}
