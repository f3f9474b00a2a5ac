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
	"fmt"

	"github.com/spf13/viper"

	"github.com/valpere/tagasalin/internal/translator"
)

// newService builds the requested chat-completions backend. API keys come
// from the environment via viper, never from flags.
func newService(name string) (translator.TranslationService, error) {
	switch name {
	case "openai":
		key := viper.GetString("openai_api_key")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return translator.NewOpenAIService(key, ""), nil
	case "openrouter":
		key := viper.GetString("openrouter_api_key")
		if key == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
		}
		return translator.NewOpenRouterService(key, ""), nil
	default:
		return nil, fmt.Errorf("unknown service %q (available: openai, openrouter)", name)
	}
}

// defaultModelFor returns the per-service default model when --model is not
// given.
func defaultModelFor(service string) string {
	if service == "openrouter" {
		return translator.DefaultOpenRouterModel
	}
	return translator.DefaultModel
}
