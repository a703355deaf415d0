package server

import (
	"log"
	"net/http"

	"github.com/lumen-ui/lumen/pkg/input"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// datasetControlID is the id of the demo page's file control; uploads land
// in the binding registry under this key.
const datasetControlID = "dataset"

// clientScript wires the rendered controls to the server: it POSTs picked
// files to the control's upload endpoint and animates the control's
// progress placeholder from the WebSocket frames.
const clientScript = `
(function () {
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/progress/ws");
  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    var holder = document.getElementById(frame.id + "_progress");
    if (!holder) return;
    var bar = holder.querySelector(".progress-bar");
    var pct = frame.total > 0 ? Math.round(100 * frame.loaded / frame.total) : 0;
    bar.style.width = (frame.done ? 100 : pct) + "%";
  };
  document.querySelectorAll("input[type=file]").forEach(function (el) {
    el.addEventListener("change", function () {
      var form = new FormData();
      for (var i = 0; i < el.files.length; i++) form.append("file", el.files[i]);
      fetch("/upload/" + el.id, { method: "POST", body: form });
    });
  });
})();
`

// handleIndex renders the demo page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	control, err := input.File(datasetControlID,
		input.WithLabel("Choose CSV File"),
		input.WithMultiple(),
		input.WithAccept("text/csv", "text/comma-separated-values,text/plain", ".csv"),
		input.WithWidth("400px"),
	)
	if err != nil {
		log.Printf("server: build file control: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := vdom.Html(
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Title(vdom.Text("lumen upload demo")),
		),
		vdom.Body(
			vdom.H1(vdom.Text("Upload a dataset")),
			control,
			vdom.Script(vdom.Raw(clientScript)),
		),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return
	}
	if err := s.renderer.RenderToWriter(w, page); err != nil {
		log.Printf("server: render index: %v", err)
	}
}
