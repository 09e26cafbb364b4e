package element

import "path"

// WalkFunc is called for every element visited by Walk with the element's
// slash-separated path from the walk root. Returning an error stops the walk.
type WalkFunc func(p string, e Element) error

// Walk visits e and its descendants depth-first, parents before children.
func Walk(e Element, fn WalkFunc) error {
	return walk("/", e, fn)
}

func walk(parent string, e Element, fn WalkFunc) error {
	p := path.Join(parent, e.Name())
	if err := fn(p, e); err != nil {
		return err
	}
	dir, ok := e.(*Directory)
	if !ok {
		return nil
	}
	for _, child := range dir.children {
		if err := walk(p, child, fn); err != nil {
			return err
		}
	}
	return nil
}
