// Package demo builds the counter application used by the CLI and by
// integration tests.
package demo

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/surreal-ui/surreal/pkg/graphics"
	"github.com/surreal-ui/surreal/pkg/layout"
	"github.com/surreal-ui/surreal/pkg/message"
	"github.com/surreal-ui/surreal/pkg/state"
	"github.com/surreal-ui/surreal/pkg/view"
	"github.com/surreal-ui/surreal/pkg/widget"
)

// Message is the demo's message set.
type Message int

const (
	None Message = iota
	UpdateCounter
	UpdateAmount
	AppendButton
	DeleteAppended
)

// IsMessage implements message.Message.
func (m Message) IsMessage() bool { return m != None }

func (m Message) String() string {
	switch m {
	case None:
		return "None"
	case UpdateCounter:
		return "UpdateCounter"
	case UpdateAmount:
		return "UpdateAmount"
	case AppendButton:
		return "AppendButton"
	case DeleteAppended:
		return "DeleteAppended"
	default:
		return fmt.Sprintf("Message(%d)", int(m))
	}
}

// State keys.
const (
	KeyCounter = "counter"
	KeyAmount  = "amount"
)

// AppendedID is the id of the button added by the append button.
const AppendedID = "_appended"

// PlusResource is the image alias used by the increment circle button.
const PlusResource = "plus"

// AmountFor maps a scroll bar position to an amount in [1, 50].
func AmountFor(pct float32) uint32 {
	return 1 + uint32(pct*49)
}

// New builds the demo tree. Register PlusIcon under PlusResource with the
// renderer before initializing it.
func New() *view.Stack {
	st := state.New()
	state.MustAdd(st, KeyCounter, int32(0))
	state.MustAdd(st, KeyAmount, uint32(1))

	amount := widget.NewText("amount_text").
		Content("1").
		Scale(25).
		Color(graphics.ColorWhite).
		OnMessage(func(t *widget.Text, msg message.Message, st *state.Store) {
			if msg == UpdateAmount {
				t.SetText(fmt.Sprint(*st.Uint32(KeyAmount)))
			}
		})

	counter := widget.NewText("counter_text").
		Content("Counter: 0").
		Scale(50).
		OnMessage(func(t *widget.Text, msg message.Message, st *state.Store) {
			if msg == UpdateCounter {
				t.SetText(fmt.Sprintf("Counter: %d", *st.Int32(KeyCounter)))
			}
		})

	root := view.VStack(
		view.FromWidget(widget.NewButton("text_button").
			Label(widget.NewText("text_button.label").Content("Button").Color(graphics.ColorBlack)).
			Roundness(100)),
		view.FromWidget(widget.NewText("text").
			Content("This is a text widget with text inside").
			Scale(30)),
		view.FromWidget(widget.NewScrollBar("scroll_test", 200, 50).
			OnScroll(func(pct float32, st *state.Store) message.Message {
				*st.Uint32(KeyAmount) = AmountFor(pct)
				return UpdateAmount
			}).
			Thickness(15).
			BackgroundColor(graphics.ColorLightGray).
			Orientation(layout.Horizontal)),
		view.FromWidget(amount),
		view.FromView(view.HStack(
			view.FromWidget(widget.NewCircleButton("with_image").
				Image(widget.NewImage("with_image.icon").Resource(PlusResource)).
				Radius(40).
				Color(graphics.ColorLightGray).
				OnClick(func(st *state.Store) message.Message {
					*st.Int32(KeyCounter) += int32(*st.Uint32(KeyAmount))
					return UpdateCounter
				})),
			view.FromWidget(widget.NewCircleButton("circle_button").
				Character(widget.Character('-').Color(graphics.ColorBlack).Scale(100)).
				Radius(40).
				Color(graphics.ColorLightGray).
				OnClick(func(st *state.Store) message.Message {
					*st.Int32(KeyCounter) -= int32(*st.Uint32(KeyAmount))
					return UpdateCounter
				})),
		)),
		view.FromWidget(counter),
		view.FromWidget(widget.NewButton("test").
			Label(widget.Character('+').Scale(70).Text("test.label")).
			Color(graphics.ColorLightGray).
			OnClick(func(st *state.Store) message.Message {
				*st.Int32(KeyCounter)++
				return UpdateCounter
			})),
		view.FromWidget(widget.NewText("more_text").
			Content("More text here").
			Color(graphics.RGBAF(0.4, 0.6, 0.8, 1)).
			Scale(50)),
		view.FromWidget(widget.NewButton("test2").Roundness(0)),
		view.FromView(view.HStack(
			view.FromWidget(widget.NewButton("delete").
				Label(widget.NewText("delete.label").Content("Delete").Color(graphics.ColorDarkGray)).
				OnClick(func(*state.Store) message.Message { return DeleteAppended })),
			view.FromWidget(widget.NewButton("test4").
				Color(graphics.RGBAF(0.2, 0.3, 0.8, 1)).
				Label(widget.NewText("test4.label").Content("state").Scale(35)).
				OnClick(func(st *state.Store) message.Message {
					log.Printf("demo: counter = %d", *st.Int32(KeyCounter))
					return None
				})),
			view.FromWidget(widget.NewButton("append").
				Color(graphics.ColorLightGray).
				Label(widget.NewText("append.label").Content("Append").Color(graphics.ColorBlack)).
				OnClick(func(*state.Store) message.Message { return AppendButton })),
			view.FromWidget(widget.NewButton("reset").
				Color(graphics.ColorDarkGray).
				Label(widget.NewText("reset.label").Content("Reset").Color(graphics.RGBAF(0.9, 0.2, 0.3, 1)).Scale(35)).
				OnClick(func(st *state.Store) message.Message {
					*st.Int32(KeyCounter) = 0
					return UpdateCounter
				})),
		)),
		view.FromWidget(widget.NewButton("test7")),
	).WithState(st).Alignment(layout.AlignCenter)

	root.SetHook(hook)
	return root
}

func hook(v view.View, msg message.Message, _ *state.Store) {
	view.MustGetWidget[*widget.Text](v, "more_text").SetText("Hook")

	switch msg {
	case AppendButton:
		b := widget.NewButton(AppendedID).
			Label(widget.NewText(AppendedID + ".label").Content("Appended").Scale(25)).
			Color(graphics.RGBAF(0.5, 0.2, 0.2, 1))
		if err := v.Append(view.FromWidget(b)); err != nil {
			log.Printf("demo: %v", err)
		}
	case DeleteAppended:
		if err := v.Delete(AppendedID); err != nil {
			log.Printf("demo: no appended button to delete")
		}
	}
}

// PlusIcon draws the image used by the increment button: a white plus on a
// transparent square.
func PlusIcon() image.Image {
	const size, arm = 64, 10
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	lo, hi := size/2-arm/2, size/2+arm/2
	for y := 8; y < size-8; y++ {
		for x := lo; x < hi; x++ {
			img.SetNRGBA(x, y, white)
			img.SetNRGBA(y, x, white)
		}
	}
	return img
}
