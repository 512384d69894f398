/*
Package llm sends file contents to an OpenAI-compatible chat-completion
endpoint and returns the rewritten text.

	+-----------+      system: prompt       +------------------+
	|  Client   | ------------------------> |  /chat/completions |
	| (Migrate) |      user: wrapped code   |  gpt-4o-mini, t=0  |
	+-----------+ <------------------------ +------------------+
	                choices[0].message.content

Every request carries exactly two messages and asks for deterministic
sampling. The SDK's automatic retries are disabled; a failed call is reported
as ErrUpstream and the caller decides what to do with the file.

🔍 Example:

	client, err := llm.New(cfg.Prompt)
	if err != nil {
		return err
	}
	migrated, err := client.Migrate(ctx, string(content))
*/
package llm
