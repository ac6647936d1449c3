package token

// Queue is an ordered, consumable sequence of tokens. The scanner pushes
// tokens in source order and the parser removes them front to back. There is
// no rewind: a removed token is gone.
type Queue struct {
	tokens []Token
}

// NewQueue creates a Queue holding the given tokens in order.
func NewQueue(tokens []Token) *Queue {
	return &Queue{tokens: tokens}
}

// Push appends a token to the back of the queue.
func (q *Queue) Push(t Token) {
	q.tokens = append(q.tokens, t)
}

// IsEmpty returns true if no tokens remain.
func (q *Queue) IsEmpty() bool {
	return len(q.tokens) == 0
}

// Len returns the number of tokens remaining.
func (q *Queue) Len() int {
	return len(q.tokens)
}

// Peek returns the front token without removing it. It returns the zero
// Token if the queue is empty; callers check IsEmpty first.
func (q *Queue) Peek() Token {
	if len(q.tokens) == 0 {
		return Token{}
	}
	return q.tokens[0]
}

// Remove removes and returns the front token. It returns the zero Token if
// the queue is empty; callers check IsEmpty first.
func (q *Queue) Remove() Token {
	if len(q.tokens) == 0 {
		return Token{}
	}
	t := q.tokens[0]
	q.tokens = q.tokens[1:]
	return t
}
