// Package openai implements the generation interface against an Azure
// OpenAI chat-completion deployment.
package openai
