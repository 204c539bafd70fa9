package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

func (a *App) list(ctx context.Context) {
	tasks, err := a.api.Tasks(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet.")
		return
	}

	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %d. %s (%s)\n", mark, t.ID, t.Title, t.Priority)
		if t.Description != "" {
			fmt.Printf("       %s\n", t.Description)
		}
	}
}

func (a *App) add(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	priority, err := getSimpleText(a.reader, "Enter priority (low/medium/high, default medium)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	task, err := a.api.AddTask(ctx, title, description, priority)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Added task %d: %s\n", task.ID, task.Title)
}

func (a *App) complete(ctx context.Context, args []string) {
	id, ok := a.taskID(args)
	if !ok {
		return
	}

	task, err := a.api.CompleteTask(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Completed task %d: %s\n", task.ID, task.Title)
}

func (a *App) delete(ctx context.Context, args []string) {
	id, ok := a.taskID(args)
	if !ok {
		return
	}

	task, err := a.api.DeleteTask(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Deleted task %d: %s\n", task.ID, task.Title)
}

// taskID takes the id from args when given, otherwise prompts for it.
func (a *App) taskID(args []string) (int64, bool) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		s, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
		if err != nil {
			log.Println(err.Error())
			return 0, false
		}
		raw = s
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Invalid task id:", raw)
		return 0, false
	}
	return id, true
}
