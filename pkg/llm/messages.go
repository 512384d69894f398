// Copyright 2025 walteh LLC
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

package llm

import (
	"github.com/openai/openai-go"
)

// CodePrefix introduces the fenced file content in the user message.
const CodePrefix = "This is the code that you need to migrate:"

// WrapCode returns the user message text for one file.
func WrapCode(content string) string {
	return CodePrefix + "\n```\n" + content + "\n```\n"
}

// BuildMessages returns the system prompt followed by the wrapped file content.
func BuildMessages(prompt, content string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(prompt),
		openai.UserMessage(WrapCode(content)),
	}
}
