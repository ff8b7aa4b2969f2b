// Package models defines the core domain models for Daily Diet.
//
// # Models
//
//   - User: a registered account; owns meals
//   - Meal: a single recorded meal, tagged on-diet or off-diet
//   - MealFields / MealPatch: inputs for creating and partially updating meals
//
// # Design Principles
//
// 1. **Single owner**: every Meal carries the ID of exactly one User and that
// owner never changes after creation.
// 2. **No secrets on the wire**: User.PasswordHash is never serialized.
// 3. **Plain values**: relationships are ID strings, never pointers.
package models
