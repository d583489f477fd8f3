package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/theflywheel/dhash"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t := dhash.New(dhash.WithLogger(logger))
	defer t.Destroy()

	fmt.Printf("Table created: size=%d base_size=%d\n", t.Size(), t.BaseSize())

	// Insert enough data to trigger a resize
	for i := 0; i < 50; i++ {
		t.Insert("key-"+strconv.Itoa(i), strconv.Itoa(i*100))
	}

	fmt.Printf("Inserted 50 key-value pairs: size=%d\n", t.Size())

	// Retrieve and display some values
	for i := 0; i < 60; i += 7 {
		key := "key-" + strconv.Itoa(i)
		if v, found := t.Search(key); found {
			fmt.Printf("%s => %s\n", key, v)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	t.Insert("key-2", "999")
	if v, err := t.Lookup("key-2"); err == nil {
		fmt.Printf("Updated key-2 => %s\n", v)
	}

	// Delete most keys so the table shrinks back
	for i := 0; i < 48; i++ {
		t.Delete("key-" + strconv.Itoa(i))
	}

	st := t.Stats()
	fmt.Printf("After deletes: count=%d size=%d tombstones=%d shrinks=%d\n",
		st.Count, st.Size, st.Tombstones, st.Shrinks)

	fmt.Println("Example completed successfully")
}
