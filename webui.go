package main

// webUIHTML is the complete self-contained web UI. No external assets,
// so the embedded browser works offline.
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Buy vs Rent Calculator</title>
    <link rel="icon" type="image/svg+xml" href="data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 64 64'%3E%3Cpath d='M32 8 L56 28 L50 28 L50 54 L38 54 L38 38 L26 38 L26 54 L14 54 L14 28 L8 28 Z' fill='%232563eb'/%3E%3Ctext x='32' y='26' font-family='Georgia' font-size='14' font-weight='bold' fill='white' text-anchor='middle'%3E%E2%82%AC%3C/text%3E%3C/svg%3E">
    <style>
        :root {
            --primary: #2563eb;
            --primary-dark: #1d4ed8;
            --success: #16a34a;
            --warning: #ea580c;
            --danger: #dc2626;
            --bg: #f1f5f9;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
        }
        .header {
            background: linear-gradient(135deg, var(--primary) 0%, var(--primary-dark) 100%);
            color: white;
            padding: 1.5rem 2rem;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .header h1 { font-size: 1.5rem; font-weight: 600; }
        .header p { opacity: 0.9; font-size: 0.875rem; }
        .container {
            display: flex;
            height: calc(100vh - 80px);
            overflow: hidden;
        }
        .config-panel {
            width: 380px;
            min-width: 380px;
            background: var(--card-bg);
            border-right: 1px solid var(--border);
            overflow-y: auto;
            padding: 0.5rem;
        }
        .results-panel {
            flex: 1;
            overflow-y: auto;
            padding: 1rem;
        }
        @media (max-width: 900px) {
            .container { flex-direction: column; height: auto; }
            .config-panel { width: 100%; min-width: 100%; }
        }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 0.75rem;
            margin-bottom: 0.75rem;
        }
        .card h2 {
            font-size: 0.85rem;
            font-weight: 600;
            margin-bottom: 0.5rem;
            color: var(--primary);
        }
        .form-group { margin-bottom: 0.5rem; }
        .form-group label {
            display: block;
            font-size: 0.7rem;
            font-weight: 500;
            color: var(--text-muted);
            margin-bottom: 0.15rem;
            text-transform: uppercase;
            letter-spacing: 0.3px;
        }
        .form-group input, .form-group select {
            width: 100%;
            padding: 0.4rem 0.5rem;
            border: 1px solid var(--border);
            border-radius: 4px;
            font-size: 0.8rem;
        }
        .form-group input:focus, .form-group select:focus {
            outline: none;
            border-color: var(--primary);
            box-shadow: 0 0 0 3px rgba(37, 99, 235, 0.1);
        }
        .form-row { display: grid; grid-template-columns: repeat(2, 1fr); gap: 0.5rem; align-items: start; }
        .form-hint {
            font-size: 0.65rem;
            color: var(--text-muted);
            margin-top: 0.2rem;
            line-height: 1.3;
        }
        .radio-row { display: flex; gap: 1rem; margin-bottom: 0.5rem; }
        .radio-row label {
            display: flex;
            align-items: center;
            gap: 0.3rem;
            font-size: 0.78rem;
            cursor: pointer;
        }
        .btn {
            display: inline-block;
            width: 100%;
            padding: 0.6rem 1rem;
            border: none;
            border-radius: 6px;
            background: var(--primary);
            color: white;
            font-size: 0.85rem;
            font-weight: 600;
            cursor: pointer;
            margin-bottom: 0.4rem;
        }
        .btn:hover { background: var(--primary-dark); }
        .btn.secondary { background: var(--card-bg); color: var(--primary); border: 1px solid var(--primary); }
        .btn.secondary:hover { background: var(--bg); }
        .btn:disabled { opacity: 0.5; cursor: wait; }
        .metric-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 0.75rem; }
        .metric {
            background: var(--bg);
            border-radius: 6px;
            padding: 0.6rem;
            text-align: center;
        }
        .metric .value { font-size: 1.15rem; font-weight: 700; color: var(--primary); }
        .metric .label { font-size: 0.65rem; color: var(--text-muted); text-transform: uppercase; letter-spacing: 0.3px; }
        .metric.good .value { color: var(--success); }
        .metric.bad .value { color: var(--danger); }
        .chart-wrap { width: 100%; overflow-x: auto; }
        svg.chart { background: var(--card-bg); }
        .legend { display: flex; gap: 1rem; font-size: 0.72rem; color: var(--text-muted); margin-top: 0.3rem; flex-wrap: wrap; }
        .legend span::before {
            content: '';
            display: inline-block;
            width: 10px; height: 10px;
            border-radius: 2px;
            margin-right: 0.3rem;
            background: var(--dot, #888);
        }
        table.grid { border-collapse: collapse; font-size: 0.72rem; margin-top: 0.4rem; }
        table.grid th, table.grid td { border: 1px solid var(--border); padding: 0.25rem 0.45rem; text-align: right; }
        table.grid th { background: var(--bg); font-weight: 600; }
        td.buy-wins { background: #dcfce7; }
        td.rent-wins { background: #fee2e2; }
        .error-box {
            background: #fee2e2;
            border: 1px solid var(--danger);
            color: var(--danger);
            border-radius: 6px;
            padding: 0.6rem 0.8rem;
            font-size: 0.8rem;
            margin-bottom: 0.75rem;
            display: none;
        }
        .status-line { font-size: 0.72rem; color: var(--text-muted); margin-top: 0.3rem; min-height: 1em; }
        .footer-links { font-size: 0.7rem; color: var(--text-muted); padding: 0.5rem 0; }
        .footer-links a { color: var(--primary); }
        .warning-box {
            background: #ffedd5;
            border: 1px solid var(--warning);
            color: var(--warning);
            border-radius: 6px;
            padding: 0.5rem 0.8rem;
            font-size: 0.78rem;
            margin-bottom: 0.75rem;
            display: none;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Buy vs Rent Calculator</h1>
        <p>Mortgage amortization and long-term net worth comparison (all rates beyond general inflation)</p>
    </div>
    <div class="container">
        <div class="config-panel">
            <div class="card">
                <h2>Property</h2>
                <div class="form-row">
                    <div class="form-group">
                        <label>Purchase Price (&euro;)</label>
                        <input type="number" id="purchase_price" step="1000">
                    </div>
                    <div class="form-group">
                        <label>Down Payment (&euro;)</label>
                        <input type="number" id="down_payment" step="1000">
                    </div>
                </div>
                <div class="form-row">
                    <div class="form-group">
                        <label>Refurbishment (&euro;)</label>
                        <input type="number" id="refurbish_cost" step="1000">
                    </div>
                    <div class="form-group">
                        <label>Nebenkosten (%)</label>
                        <input type="number" id="transaction_cost_rate" step="0.1">
                    </div>
                </div>
                <div class="form-row">
                    <div class="form-group">
                        <label>Maintenance (%/yr)</label>
                        <input type="number" id="maintenance_rate" step="0.1">
                    </div>
                    <div class="form-group">
                        <label>Property Taxes (&euro;/yr)</label>
                        <input type="number" id="property_taxes" step="100">
                    </div>
                </div>
                <div class="form-group">
                    <label>Comparable Rent (&euro;/month)</label>
                    <input type="number" id="initial_rent" step="50">
                </div>
            </div>
            <div class="card">
                <h2>Market Rates</h2>
                <div class="form-row">
                    <div class="form-group">
                        <label>Loan Interest (%)</label>
                        <input type="number" id="loan_interest_rate" step="0.1">
                    </div>
                    <div class="form-group">
                        <label>Appreciation (%)</label>
                        <input type="number" id="property_appreciation_rate" step="0.1">
                    </div>
                </div>
                <div class="form-row">
                    <div class="form-group">
                        <label>Rent Inflation (%)</label>
                        <input type="number" id="rent_inflation_rate" step="0.1">
                    </div>
                    <div class="form-group">
                        <label>Investment Return (%)</label>
                        <input type="number" id="investment_return_rate" step="0.1">
                    </div>
                </div>
                <div class="form-hint">Loan rate reference: ECB marginal lending rate plus a typical 1.5&ndash;3% bank margin.</div>
            </div>
            <div class="card">
                <h2>Financing Scenario</h2>
                <div class="radio-row">
                    <label><input type="radio" name="solve_for" value="payment" checked onchange="updateScenarioInputs()"> Term given</label>
                    <label><input type="radio" name="solve_for" value="term" onchange="updateScenarioInputs()"> Payment given</label>
                </div>
                <div class="form-group" id="term_input_group">
                    <label>Loan Term (years)</label>
                    <input type="number" id="loan_term_years" min="1" step="1">
                </div>
                <div class="form-group" id="payment_input_group" style="display:none">
                    <label>Monthly Payment (&euro;)</label>
                    <input type="number" id="monthly_payment" step="50">
                </div>
            </div>
            <div class="card">
                <h2>Actions</h2>
                <button class="btn" id="btn-amortize" onclick="runAmortize()">Update Amortization</button>
                <button class="btn" id="btn-compare" onclick="runCompare()">Update Comparison</button>
                <button class="btn secondary" id="btn-sensitivity" onclick="runSensitivity()">Run Sensitivity Grid</button>
                <button class="btn secondary" onclick="exportCSV()">Export CSV</button>
                <button class="btn secondary" onclick="downloadPDF()">Download PDF Report</button>
                <div class="status-line" id="status"></div>
            </div>
            <div class="footer-links">
                Data references:
                <a href="https://www.bundesbank.de/en/statistics/money-and-capital-markets/interest-rates-and-yields" target="_blank">Bundesbank interest rates</a> &middot;
                <a href="https://www.destatis.de/EN/Themes/Economy/Prices/Construction-Prices-And-Real-Property-Prices/_node.html" target="_blank">destatis property prices</a>
            </div>
        </div>
        <div class="results-panel">
            <div class="error-box" id="error-box"></div>
            <div class="warning-box" id="cap-warning">Payment barely covers interest. The term was capped and figures are approximate.</div>

            <div class="card" id="amort-card" style="display:none">
                <h2>Amortization</h2>
                <div class="metric-grid">
                    <div class="metric"><div class="value" id="m-payment">&ndash;</div><div class="label">Monthly Payment</div></div>
                    <div class="metric"><div class="value" id="m-term">&ndash;</div><div class="label">Loan Term</div></div>
                    <div class="metric"><div class="value" id="m-interest">&ndash;</div><div class="label">Total Interest</div></div>
                    <div class="metric"><div class="value" id="m-tilgung">&ndash;</div><div class="label">Initial Tilgung</div></div>
                </div>
                <div class="chart-wrap"><svg id="sweep-chart" class="chart" width="760" height="320"></svg></div>
                <div class="legend">
                    <span style="--dot:#2563eb">Monthly payment by term</span>
                    <span style="--dot:#dc2626" id="legend-chosen">Chosen term</span>
                    <span style="--dot:#16a34a" id="legend-derived" hidden>Derived term</span>
                </div>
            </div>

            <div class="card" id="compare-card" style="display:none">
                <h2>Net Worth: Buy vs Rent-and-Invest</h2>
                <div class="metric-grid" id="compare-metrics"></div>
                <div id="compare-charts"></div>
                <div class="status-line" id="last-savings"></div>
            </div>

            <div class="card" id="sensitivity-card" style="display:none">
                <h2>Sensitivity: Who Wins Under Other Market Assumptions</h2>
                <div class="form-hint">Rows: investment return. Columns: property appreciation. Green cells: buying ends the term ahead.</div>
                <div id="sensitivity-grids"></div>
            </div>
        </div>
    </div>

    <script>
        var lastCompare = null;
        var policyColors = { 'optimistic': '#2563eb', 'balanced': '#7c3aed', 'conservative': '#0d9488' };

        function pct(id) { return (parseFloat(document.getElementById(id).value) || 0) / 100; }
        function num(id) { return parseFloat(document.getElementById(id).value) || 0; }
        function intval(id) { return parseInt(document.getElementById(id).value, 10) || 0; }

        function solveFor() {
            return document.querySelector('input[name="solve_for"]:checked').value;
        }

        function updateScenarioInputs() {
            var paymentGiven = solveFor() === 'term';
            document.getElementById('term_input_group').style.display = paymentGiven ? 'none' : '';
            document.getElementById('payment_input_group').style.display = paymentGiven ? '' : 'none';
        }

        function buildRequest() {
            return {
                market: {
                    loan_interest_rate: pct('loan_interest_rate'),
                    property_appreciation_rate: pct('property_appreciation_rate'),
                    rent_inflation_rate: pct('rent_inflation_rate'),
                    investment_return_rate: pct('investment_return_rate')
                },
                property: {
                    purchase_price: num('purchase_price'),
                    down_payment: num('down_payment'),
                    refurbish_cost: num('refurbish_cost'),
                    transaction_cost_rate: pct('transaction_cost_rate'),
                    maintenance_rate: pct('maintenance_rate'),
                    property_taxes: num('property_taxes'),
                    initial_rent: num('initial_rent')
                },
                financing: {
                    solve_for: solveFor(),
                    loan_term_years: intval('loan_term_years'),
                    monthly_payment: num('monthly_payment')
                },
                sweep: { min_term_years: 10, max_term_years: 40 }
            };
        }

        function showError(msg) {
            var box = document.getElementById('error-box');
            box.textContent = msg;
            box.style.display = msg ? 'block' : 'none';
        }

        function setStatus(msg) {
            document.getElementById('status').textContent = msg || '';
        }

        function euro(v) {
            var sign = v < 0 ? '-' : '';
            v = Math.abs(v);
            if (v >= 1000000) return sign + '€' + (v / 1000000).toFixed(2) + 'M';
            if (v >= 1000) return sign + '€' + Math.round(v / 1000) + 'k';
            return sign + '€' + Math.round(v);
        }

        function euroFull(v) {
            return '€' + v.toFixed(2);
        }

        function loadConfig() {
            fetch('/api/config').then(function(r) { return r.json(); }).then(function(cfg) {
                if (!cfg || !cfg.property) return;
                document.getElementById('purchase_price').value = cfg.property.purchase_price;
                document.getElementById('down_payment').value = cfg.property.down_payment;
                document.getElementById('refurbish_cost').value = cfg.property.refurbish_cost;
                document.getElementById('transaction_cost_rate').value = (cfg.property.transaction_cost_rate * 100).toFixed(1);
                document.getElementById('maintenance_rate').value = (cfg.property.maintenance_rate * 100).toFixed(1);
                document.getElementById('property_taxes').value = cfg.property.property_taxes;
                document.getElementById('initial_rent').value = cfg.property.initial_rent;
                document.getElementById('loan_interest_rate').value = (cfg.market.loan_interest_rate * 100).toFixed(1);
                document.getElementById('property_appreciation_rate').value = (cfg.market.property_appreciation_rate * 100).toFixed(1);
                document.getElementById('rent_inflation_rate').value = (cfg.market.rent_inflation_rate * 100).toFixed(1);
                document.getElementById('investment_return_rate').value = (cfg.market.investment_return_rate * 100).toFixed(1);
                document.getElementById('loan_term_years').value = cfg.financing.loan_term_years;
                document.getElementById('monthly_payment').value = cfg.financing.monthly_payment;
                if (cfg.financing.solve_for === 'term') {
                    document.querySelector('input[name="solve_for"][value="term"]').checked = true;
                }
                updateScenarioInputs();
                runAmortize();
                runCompare();
            });
        }

        function postJSON(url, body) {
            return fetch(url, {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(body)
            }).then(function(r) { return r.json(); });
        }

        function runAmortize() {
            showError('');
            var btn = document.getElementById('btn-amortize');
            btn.disabled = true;
            postJSON('/api/amortize', buildRequest()).then(function(res) {
                btn.disabled = false;
                if (!res.success) { showError(res.error); return; }
                renderAmortization(res);
            }).catch(function(e) { btn.disabled = false; showError(String(e)); });
        }

        function renderAmortization(res) {
            document.getElementById('amort-card').style.display = '';
            var r = res.result;
            document.getElementById('m-payment').textContent = euroFull(r.monthly_payment);
            document.getElementById('m-term').textContent = (r.total_months / 12).toFixed(1) + ' yr';
            document.getElementById('m-interest').textContent = euro(r.total_interest_paid);
            document.getElementById('m-tilgung').textContent = (r.initial_repayment_rate * 100).toFixed(2) + '%';
            document.getElementById('cap-warning').style.display = r.capped ? 'block' : 'none';
            document.getElementById('legend-chosen').hidden = res.term_derived;
            document.getElementById('legend-derived').hidden = !res.term_derived;
            drawSweepChart(res);
        }

        function svgEl(tag, attrs) {
            var el = document.createElementNS('http://www.w3.org/2000/svg', tag);
            for (var k in attrs) el.setAttribute(k, attrs[k]);
            return el;
        }

        function drawSweepChart(res) {
            var svg = document.getElementById('sweep-chart');
            while (svg.firstChild) svg.removeChild(svg.firstChild);
            var pts = res.sweep;
            if (!pts || pts.length === 0) return;

            var W = 760, H = 320, padL = 70, padR = 20, padT = 15, padB = 40;
            var minX = pts[0].term_years, maxX = pts[pts.length - 1].term_years;
            var minY = Infinity, maxY = -Infinity;
            pts.forEach(function(p) {
                if (p.monthly_payment < minY) minY = p.monthly_payment;
                if (p.monthly_payment > maxY) maxY = p.monthly_payment;
            });
            var spanY = maxY - minY || 1;
            minY -= spanY * 0.05; maxY += spanY * 0.05;

            function sx(x) { return padL + (x - minX) / (maxX - minX) * (W - padL - padR); }
            function sy(y) { return H - padB - (y - minY) / (maxY - minY) * (H - padT - padB); }

            // Axes and gridlines
            for (var i = 0; i <= 5; i++) {
                var yv = minY + (maxY - minY) * i / 5;
                svg.appendChild(svgEl('line', { x1: padL, y1: sy(yv), x2: W - padR, y2: sy(yv), stroke: '#e2e8f0' }));
                var lbl = svgEl('text', { x: padL - 6, y: sy(yv) + 4, 'text-anchor': 'end', 'font-size': 11, fill: '#64748b' });
                lbl.textContent = euro(yv);
                svg.appendChild(lbl);
            }
            for (var x = minX; x <= maxX; x += 5) {
                var tick = svgEl('text', { x: sx(x), y: H - padB + 16, 'text-anchor': 'middle', 'font-size': 11, fill: '#64748b' });
                tick.textContent = x;
                svg.appendChild(tick);
            }
            var xlabel = svgEl('text', { x: (padL + W - padR) / 2, y: H - 6, 'text-anchor': 'middle', 'font-size': 11, fill: '#64748b' });
            xlabel.textContent = 'Loan term (years)';
            svg.appendChild(xlabel);

            // Curve
            var d = '';
            pts.forEach(function(p, i) {
                d += (i === 0 ? 'M' : 'L') + sx(p.term_years).toFixed(1) + ',' + sy(p.monthly_payment).toFixed(1);
            });
            svg.appendChild(svgEl('path', { d: d, fill: 'none', stroke: '#2563eb', 'stroke-width': 2 }));

            // Marker for the chosen or derived term
            if (res.chosen_term >= minX && res.chosen_term <= maxX) {
                var color = res.term_derived ? '#16a34a' : '#dc2626';
                svg.appendChild(svgEl('circle', {
                    cx: sx(res.chosen_term), cy: sy(res.chosen_payment), r: 6,
                    fill: color, stroke: 'white', 'stroke-width': 2
                }));
                var mlbl = svgEl('text', {
                    x: sx(res.chosen_term), y: sy(res.chosen_payment) - 12,
                    'text-anchor': 'middle', 'font-size': 11, fill: color, 'font-weight': 'bold'
                });
                mlbl.textContent = res.chosen_term.toFixed(1) + ' yr / ' + euroFull(res.chosen_payment);
                svg.appendChild(mlbl);
            }
        }

        function runCompare() {
            showError('');
            var btn = document.getElementById('btn-compare');
            btn.disabled = true;
            postJSON('/api/compare', buildRequest()).then(function(res) {
                btn.disabled = false;
                if (!res.success) { showError(res.error); return; }
                lastCompare = res;
                renderComparison(res);
            }).catch(function(e) { btn.disabled = false; showError(String(e)); });
        }

        function renderComparison(res) {
            document.getElementById('compare-card').style.display = '';

            var metrics = document.getElementById('compare-metrics');
            metrics.innerHTML = '';
            res.policies.forEach(function(p) {
                var diff = p.final_buy - p.final_rent;
                var div = document.createElement('div');
                div.className = 'metric ' + (diff >= 0 ? 'good' : 'bad');
                div.innerHTML = '<div class="value">' + (diff >= 0 ? 'Buy +' + euro(diff) : 'Rent +' + euro(-diff)) +
                    '</div><div class="label">' + p.short_name + '</div>';
                metrics.appendChild(div);
            });

            var charts = document.getElementById('compare-charts');
            charts.innerHTML = '';
            res.policies.forEach(function(p) {
                var wrap = document.createElement('div');
                wrap.className = 'chart-wrap';
                var title = document.createElement('div');
                title.className = 'form-hint';
                title.textContent = p.descriptive_name;
                wrap.appendChild(title);
                var svg = svgEl('svg', { width: 760, height: 260, 'class': 'chart' });
                wrap.appendChild(svg);
                var legend = document.createElement('div');
                legend.className = 'legend';
                legend.innerHTML = '<span style="--dot:' + (policyColors[p.policy] || '#2563eb') + '">Buy</span>' +
                    '<span style="--dot:#94a3b8">Rent and invest</span>' +
                    (p.crossover_month >= 0
                        ? '<span style="--dot:#16a34a">Buy ahead from year ' + (p.crossover_month / 12).toFixed(1) + '</span>'
                        : '<span style="--dot:#dc2626">Buying never ends ahead</span>');
                wrap.appendChild(legend);
                charts.appendChild(wrap);
                drawTrajectoryChart(svg, p);
            });

            document.getElementById('last-savings').textContent =
                'Last monthly savings on the rent side: ' + euroFull(res.final_monthly_savings) +
                ' (buying cost minus rent in the final month)';
        }

        function drawTrajectoryChart(svg, p) {
            var pts = p.points;
            if (!pts || pts.length === 0) return;
            var W = 760, H = 260, padL = 70, padR = 20, padT = 12, padB = 35;

            var minY = Infinity, maxY = -Infinity;
            pts.forEach(function(pt) {
                minY = Math.min(minY, pt.buy_net_worth, pt.rent_net_worth);
                maxY = Math.max(maxY, pt.buy_net_worth, pt.rent_net_worth);
            });
            var spanY = maxY - minY || 1;
            minY -= spanY * 0.05; maxY += spanY * 0.05;
            var maxMonth = pts[pts.length - 1].month;

            function sx(m) { return padL + m / maxMonth * (W - padL - padR); }
            function sy(v) { return H - padB - (v - minY) / (maxY - minY) * (H - padT - padB); }

            for (var i = 0; i <= 4; i++) {
                var yv = minY + (maxY - minY) * i / 4;
                svg.appendChild(svgEl('line', { x1: padL, y1: sy(yv), x2: W - padR, y2: sy(yv), stroke: '#e2e8f0' }));
                var lbl = svgEl('text', { x: padL - 6, y: sy(yv) + 4, 'text-anchor': 'end', 'font-size': 11, fill: '#64748b' });
                lbl.textContent = euro(yv);
                svg.appendChild(lbl);
            }
            var yearStep = Math.max(1, Math.round(maxMonth / 12 / 8));
            for (var yr = 0; yr * 12 <= maxMonth; yr += yearStep) {
                var tick = svgEl('text', { x: sx(yr * 12), y: H - padB + 16, 'text-anchor': 'middle', 'font-size': 11, fill: '#64748b' });
                tick.textContent = yr;
                svg.appendChild(tick);
            }
            var xlabel = svgEl('text', { x: (padL + W - padR) / 2, y: H - 4, 'text-anchor': 'middle', 'font-size': 11, fill: '#64748b' });
            xlabel.textContent = 'Years';
            svg.appendChild(xlabel);

            // Zero line
            if (minY < 0 && maxY > 0) {
                svg.appendChild(svgEl('line', { x1: padL, y1: sy(0), x2: W - padR, y2: sy(0), stroke: '#94a3b8', 'stroke-dasharray': '4 3' }));
            }

            function pathFor(key) {
                var d = '';
                pts.forEach(function(pt, i) {
                    d += (i === 0 ? 'M' : 'L') + sx(pt.month).toFixed(1) + ',' + sy(pt[key]).toFixed(1);
                });
                return d;
            }
            svg.appendChild(svgEl('path', { d: pathFor('rent_net_worth'), fill: 'none', stroke: '#94a3b8', 'stroke-width': 2 }));
            svg.appendChild(svgEl('path', { d: pathFor('buy_net_worth'), fill: 'none', stroke: policyColors[p.policy] || '#2563eb', 'stroke-width': 2 }));
        }

        function runSensitivity() {
            showError('');
            var btn = document.getElementById('btn-sensitivity');
            btn.disabled = true;
            setStatus('Running sensitivity grid...');
            var req = buildRequest();
            postJSON('/api/sensitivity', req).then(function(res) {
                btn.disabled = false;
                setStatus('');
                if (!res.success) { showError(res.error); return; }
                renderSensitivity(res);
            }).catch(function(e) { btn.disabled = false; setStatus(''); showError(String(e)); });
        }

        function renderSensitivity(res) {
            document.getElementById('sensitivity-card').style.display = '';
            var host = document.getElementById('sensitivity-grids');
            host.innerHTML = '';
            res.grids.forEach(function(grid) {
                var title = document.createElement('div');
                title.className = 'form-hint';
                title.style.marginTop = '0.6rem';
                title.textContent = grid.policy;
                host.appendChild(title);

                var table = document.createElement('table');
                table.className = 'grid';
                var head = '<tr><th></th>';
                grid.appreciation_rates.forEach(function(a) {
                    head += '<th>' + (a * 100).toFixed(0) + '%</th>';
                });
                head += '</tr>';
                var body = '';
                grid.investment_returns.forEach(function(r, i) {
                    body += '<tr><th>' + (r * 100).toFixed(0) + '%</th>';
                    grid.cells[i].forEach(function(cell) {
                        var buyAdvantage = -cell.delta;
                        var cls = buyAdvantage >= 0 ? 'buy-wins' : 'rent-wins';
                        body += '<td class="' + cls + '">' + euro(buyAdvantage) + '</td>';
                    });
                    body += '</tr>';
                });
                table.innerHTML = head + body;
                host.appendChild(table);
            });
        }

        function exportCSV() {
            if (!lastCompare) { showError('Run the comparison first.'); return; }
            var lines = ['policy,month,buy_net_worth,rent_net_worth'];
            lastCompare.policies.forEach(function(p) {
                p.points.forEach(function(pt) {
                    lines.push(p.policy + ',' + pt.month + ',' +
                        pt.buy_net_worth.toFixed(2) + ',' + pt.rent_net_worth.toFixed(2));
                });
            });
            postJSON('/api/export-csv', { content: lines.join('\n') + '\n' }).then(function(res) {
                if (res.success) {
                    setStatus(res.message);
                } else {
                    showError(res.message);
                }
            });
        }

        function downloadPDF() {
            setStatus('Generating PDF...');
            fetch('/api/download-pdf', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(buildRequest())
            }).then(function(r) {
                if (!r.ok) { return r.text().then(function(t) { throw new Error(t); }); }
                return r.blob();
            }).then(function(blob) {
                setStatus('');
                var a = document.createElement('a');
                a.href = URL.createObjectURL(blob);
                a.download = 'buy-vs-rent-report.pdf';
                a.click();
                URL.revokeObjectURL(a.href);
            }).catch(function(e) { setStatus(''); showError(String(e)); });
        }

        loadConfig();
    </script>
</body>
</html>
`
