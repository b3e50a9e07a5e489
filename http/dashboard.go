package http

import "net/http"

// handleDashboard serves the interactive page: the same parameters as the
// scrape endpoint through form controls, with the result rendered as a
// table and downloadable as CSV.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(dashboardHTML))
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>listlens</title>
<style>
  body { font-family: sans-serif; margin: 2rem; max-width: 72rem; }
  form { display: flex; gap: 0.5rem; margin-bottom: 1rem; flex-wrap: wrap; }
  input, select, button { padding: 0.4rem 0.6rem; font-size: 1rem; }
  table { border-collapse: collapse; width: 100%; font-size: 0.85rem; }
  th, td { border: 1px solid #ccc; padding: 0.3rem 0.5rem; text-align: left; }
  th { background: #f2f2f2; }
  td { max-width: 24rem; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
  #status { margin: 0.5rem 0; color: #555; }
</style>
</head>
<body>
<h1>listlens</h1>
<form id="form">
  <select id="site">
    <option value="mercari">mercari</option>
    <option value="amazon">amazon</option>
    <option value="crowdworks">crowdworks</option>
  </select>
  <input id="keyword" placeholder="keyword" required>
  <input id="max" type="number" value="10" min="1" max="50">
  <button type="submit">Scrape</button>
  <button type="button" id="download" disabled>Download CSV</button>
</form>
<div id="status"></div>
<div id="result"></div>
<script>
let items = [];
const form = document.getElementById('form');
const status = document.getElementById('status');
const result = document.getElementById('result');
const download = document.getElementById('download');

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  status.textContent = 'Scraping…';
  result.innerHTML = '';
  download.disabled = true;
  try {
    const resp = await fetch('/api/scrape', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({
        site: document.getElementById('site').value,
        keyword: document.getElementById('keyword').value,
        max_items: parseInt(document.getElementById('max').value, 10),
      }),
    });
    const data = await resp.json();
    if (!resp.ok) {
      status.textContent = data.error || ('HTTP ' + resp.status);
      return;
    }
    items = data.items;
    status.textContent = data.count + ' items';
    renderTable(items);
    download.disabled = items.length === 0;
  } catch (err) {
    status.textContent = String(err);
  }
});

function headers(rows) {
  const set = new Set();
  rows.forEach(r => Object.keys(r).forEach(k => set.add(k)));
  return Array.from(set).sort();
}

function renderTable(rows) {
  if (rows.length === 0) return;
  const cols = headers(rows);
  const table = document.createElement('table');
  table.innerHTML = '<tr>' + cols.map(c => '<th>' + c + '</th>').join('') + '</tr>';
  rows.forEach(r => {
    const tr = document.createElement('tr');
    cols.forEach(c => {
      const td = document.createElement('td');
      td.textContent = r[c] || '';
      tr.appendChild(td);
    });
    table.appendChild(tr);
  });
  result.appendChild(table);
}

download.addEventListener('click', () => {
  const cols = headers(items);
  const esc = v => '"' + String(v || '').replace(/"/g, '""') + '"';
  const lines = [cols.map(esc).join(',')];
  items.forEach(r => lines.push(cols.map(c => esc(r[c])).join(',')));
  const blob = new Blob(['\uFEFF' + lines.join('\r\n')], {type: 'text/csv;charset=utf-8'});
  const a = document.createElement('a');
  a.href = URL.createObjectURL(blob);
  a.download = 'listlens.csv';
  a.click();
  URL.revokeObjectURL(a.href);
});
</script>
</body>
</html>
`
