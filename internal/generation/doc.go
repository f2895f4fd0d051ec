// Package generation defines the interface and prompt contract for turning
// study notes into flashcards and practice items via an external LLM
// service. It abstracts the chat-completion API details, allowing the
// application to generate study sets without coupling to a specific vendor.
package generation
