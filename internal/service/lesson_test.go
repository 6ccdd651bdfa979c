package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarlaRL666/edufinanciero/content"
)

func writeLesson(t *testing.T, dir, slug, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0o644)
	require.NoError(t, err)
}

func newLessonService(t *testing.T) (*LessonService, string) {
	t.Helper()

	contentPath := t.TempDir()
	lessonsDir := filepath.Join(contentPath, "lessons")
	require.NoError(t, os.MkdirAll(lessonsDir, 0o755))

	return NewLessonService(os.DirFS(contentPath)), lessonsDir
}

func TestLessonParsesFrontmatter(t *testing.T) {
	svc, dir := newLessonService(t)
	writeLesson(t, dir, "budgeting", `---
title: Budgeting Basics
description: Learn to plan your money
category: budgeting
order: 1
---

# Budgeting Basics

A budget tells your money where to go.
`)

	lesson, err := svc.Lesson("budgeting")
	require.NoError(t, err)

	assert.Equal(t, "budgeting", lesson.Slug)
	assert.Equal(t, "Budgeting Basics", lesson.Title)
	assert.Equal(t, "Learn to plan your money", lesson.Description)
	assert.Equal(t, "budgeting", lesson.Category)
	assert.Equal(t, 1, lesson.Order)
	assert.Equal(t, 1, lesson.ReadTime)
	assert.Contains(t, lesson.HTMLContent, "<h1")
	assert.Contains(t, lesson.HTMLContent, "Budgeting Basics")
	assert.NotContains(t, lesson.HTMLContent, "---")
}

func TestLessonNotFound(t *testing.T) {
	svc, _ := newLessonService(t)

	_, err := svc.Lesson("missing")
	assert.Error(t, err)
}

func TestLessonsSortedByOrder(t *testing.T) {
	svc, dir := newLessonService(t)
	writeLesson(t, dir, "credit", "---\ntitle: Credit\norder: 3\n---\nbody")
	writeLesson(t, dir, "budgeting", "---\ntitle: Budgeting\norder: 1\n---\nbody")
	writeLesson(t, dir, "saving", "---\ntitle: Saving\norder: 2\n---\nbody")

	lessons, err := svc.Lessons()
	require.NoError(t, err)
	require.Len(t, lessons, 3)

	assert.Equal(t, "Budgeting", lessons[0].Title)
	assert.Equal(t, "Saving", lessons[1].Title)
	assert.Equal(t, "Credit", lessons[2].Title)

	// List view omits rendered bodies
	for _, lesson := range lessons {
		assert.Empty(t, lesson.HTMLContent)
	}
}

func TestLessonsTieBreakByTitle(t *testing.T) {
	svc, dir := newLessonService(t)
	writeLesson(t, dir, "b", "---\ntitle: Banana\norder: 1\n---\nbody")
	writeLesson(t, dir, "a", "---\ntitle: Apple\norder: 1\n---\nbody")

	lessons, err := svc.Lessons()
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "Apple", lessons[0].Title)
	assert.Equal(t, "Banana", lessons[1].Title)
}

func TestLessonReadTime(t *testing.T) {
	svc, dir := newLessonService(t)
	writeLesson(t, dir, "long", "word "+strings.Repeat("lorem ipsum dolor sit amet ", 100))

	lesson, err := svc.Lesson("long")
	require.NoError(t, err)
	assert.Equal(t, 2, lesson.ReadTime)
}

func TestShippedLessonsParse(t *testing.T) {
	svc := NewLessonService(content.FS)

	lessons, err := svc.Lessons()
	require.NoError(t, err)
	require.NotEmpty(t, lessons)

	for _, lesson := range lessons {
		assert.NotEmpty(t, lesson.Title, "lesson %s has no title", lesson.Slug)
		assert.NotEmpty(t, lesson.Category, "lesson %s has no category", lesson.Slug)
		assert.Greater(t, lesson.Order, 0, "lesson %s has no order", lesson.Slug)
	}
}
