package humor

import (
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var s State
	serializer.RegisterTypedDeserializer(s.SerializerType(), DeserializeState)
}

// A State is everything a checkpoint persists: the model
// parameters and the running minimum loss.
type State struct {
	Model    *Model
	BestLoss float64
}

// DeserializeState deserializes a State.
func DeserializeState(d []byte) (*State, error) {
	var res State
	err := serializer.DeserializeAny(d, &res.Model, &res.BestLoss)
	if err != nil {
		return nil, essentials.AddCtx("deserialize State", err)
	}
	return &res, nil
}

// SerializerType returns the unique ID used to serialize
// a State with the serializer package.
func (s *State) SerializerType() string {
	return "github.com/JingboWang1997/ConversationalHumor/humor.State"
}

// Serialize serializes the State.
func (s *State) Serialize() ([]byte, error) {
	return serializer.SerializeAny(s.Model, s.BestLoss)
}

// A Saver persists and restores training state, decoupling
// the training loop from the persistence mechanism.
type Saver interface {
	// Save persists a snapshot of the state.
	Save(s *State) error

	// Restore loads the most recent snapshot.
	// It returns (nil, nil) if no snapshot exists.
	Restore() (*State, error)
}

// A FileSaver stores checkpoints in a single file using
// the serializer format.
type FileSaver struct {
	Path string
}

// Save writes the state to the file.
func (f *FileSaver) Save(s *State) error {
	data, err := serializer.SerializeWithType(s)
	if err != nil {
		return essentials.AddCtx("save checkpoint", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return essentials.AddCtx("save checkpoint", err)
	}
	return nil
}

// Restore reads the state from the file.
// A missing file is not an error; it yields (nil, nil).
func (f *FileSaver) Restore() (*State, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, essentials.AddCtx("restore checkpoint", err)
	}
	obj, err := serializer.DeserializeWithType(data)
	if err != nil {
		return nil, essentials.AddCtx("restore checkpoint", err)
	}
	state, ok := obj.(*State)
	if !ok {
		return nil, fmt.Errorf("restore checkpoint: not a State: %T", obj)
	}
	return state, nil
}
